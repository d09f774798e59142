package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"

	"github.com/xqrs/recycler"
	"github.com/xqrs/recycler/help"
	"github.com/xqrs/recycler/keybind"
)

const (
	pageSize  = 40
	pageCount = 5
	latency   = 400 * time.Millisecond
)

type record struct {
	id    int
	title string
	body  string
}

var words = []string{
	"adapter", "binder", "footer", "header", "pager", "refresh", "scroll",
	"viewport", "position", "notification", "range", "cursor", "terminal",
}

func generate(from, n int) []record {
	records := make([]record, 0, n)
	for i := from; i < from+n; i++ {
		body := ""
		for range 4 + rand.IntN(20) {
			body += words[rand.IntN(len(words))] + " "
		}
		records = append(records, record{
			id:    i,
			title: fmt.Sprintf("Record #%d", i),
			body:  body,
		})
	}
	return records
}

func main() {
	if err := start(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func start(args []string) error {
	flags := flag.NewFlagSet("recyclerdemo", flag.ContinueOnError)
	configPath := flags.String("config", "", "path to a YAML config file")
	logPath := flags.String("log", "", "path to a log file")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg := recycler.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = recycler.LoadConfig(*configPath); err != nil {
			return fmt.Errorf("could not load config: %w", err)
		}
	}

	logger := logr.Discard()
	if *logPath != "" {
		file, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("could not open log file: %w", err)
		}
		defer file.Close()
		logger = funcr.New(func(prefix, args string) {
			fmt.Fprintln(file, time.Now().Format(time.TimeOnly), prefix, args)
		}, funcr.Options{Verbosity: 2})
	}

	return run(cfg, logger)
}

func run(cfg recycler.Config, logger logr.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app := recycler.NewApplication()
	view := recycler.NewRecyclerView()
	view.SetBorders(recycler.BordersAll)
	view.SetBorderSet(recycler.BorderSetRound())
	view.SetTitle(" records ")
	view.SetTitleAlignment(recycler.AlignmentLeft)
	view.SetGap(1)

	f := &feed{app: app, ctx: ctx, logger: logger.WithName("feed"), pages: 1}
	binder := recycler.BinderFuncs[record]{
		CreateFunc: func(int) recycler.ItemView {
			return recycler.NewTextItem("")
		},
		BindFunc: func(view recycler.ItemView, r record, position int, viewType int) {
			view.(*recycler.TextItem).SetText(r.title + "\n" + r.body)
		},
	}
	f.list = recycler.NewDelegate(binder, view,
		recycler.WithLoadOp(f),
		recycler.WithConfig(cfg),
		recycler.WithLogger(logger.WithName("list")),
	)
	if err := f.list.Build(); err != nil {
		return err
	}

	keys := help.New().SetKeyMap(view.Keys)
	f.list.AddHeader(keys)
	f.list.SetClickedFunc(func(r record, position int) {
		logger.Info("clicked", "id", r.id, "position", position)
	})
	f.list.SetLongClickedFunc(func(r record, position int) bool {
		f.list.RemoveItem(position)
		return true
	})
	f.list.Append(generate(0, pageSize)...)

	return app.SetRoot(&root{RecyclerView: view, help: keys}).Run()
}

var (
	quitKey = keybind.NewKeybind(keybind.WithKeys("q", "ctrl+c"), keybind.WithHelp("q", "quit"))
	helpKey = keybind.NewKeybind(keybind.WithKeys("?"), keybind.WithHelp("?", "help"))
)

// root adds the application keys on top of the list.
type root struct {
	*recycler.RecyclerView
	help *help.Help
}

func (r *root) InputHandler(event *tcell.EventKey) recycler.Command {
	switch {
	case keybind.Matches(event, quitKey):
		return recycler.QuitCommand{}
	case keybind.Matches(event, helpKey):
		r.help.SetShowAll(!r.help.ShowAll())
		return recycler.RedrawCommand{}
	}
	return r.RecyclerView.InputHandler(event)
}

// feed is the LoadOp of the demo. Fetches run in goroutines and hand their
// results back to the event loop.
type feed struct {
	app    *recycler.Application
	ctx    context.Context
	list   *recycler.Delegate[record]
	logger logr.Logger
	pages  int
}

func (f *feed) Refresh() {
	go f.fetch(0, func(records []record) {
		f.pages = 1
		f.list.ReplaceAll(records)
		f.list.Reset()
	})
}

func (f *feed) LoadMore() {
	from := f.list.ContentItemCount()
	go f.fetch(from, func(records []record) {
		f.pages++
		f.list.Append(records...)
		if f.pages >= pageCount {
			f.list.HasNoMore()
			return
		}
		f.list.Reset()
	})
}

func (f *feed) fetch(from int, done func([]record)) {
	select {
	case <-f.ctx.Done():
		return
	case <-time.After(latency):
	}
	records := generate(from, pageSize)
	f.logger.V(1).Info("fetched", "from", from, "count", len(records))
	f.app.QueueUpdateDraw(func() {
		done(records)
	})
}
