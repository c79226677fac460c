package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/MakeNowJust/heredoc"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/unkn0wn-root/restpad/internal/bindings"
	"github.com/unkn0wn-root/restpad/internal/config"
	"github.com/unkn0wn-root/restpad/internal/history"
	"github.com/unkn0wn-root/restpad/internal/httpclient"
	"github.com/unkn0wn-root/restpad/internal/telemetry"
	"github.com/unkn0wn-root/restpad/internal/theme"
	"github.com/unkn0wn-root/restpad/internal/ui"
	"github.com/unkn0wn-root/restpad/internal/workspace"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	var (
		workspacePath string
		timeout       time.Duration
		insecure      bool
		follow        bool
		proxyURL      string
		showVersion   bool
	)

	telemetryCfg := telemetry.ConfigFromEnv(os.Getenv)

	flag.StringVar(&workspacePath, "workspace", "", "Path to workspace YAML file")
	flag.DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	flag.BoolVar(&insecure, "insecure", false, "Skip TLS certificate verification")
	flag.BoolVar(&follow, "follow", true, "Follow redirects")
	flag.StringVar(&proxyURL, "proxy", "", "HTTP proxy URL")
	flag.BoolVar(&showVersion, "version", false, "Show restpad version")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, heredoc.Doc(`
			restpad - a terminal workbench for HTTP APIs

			Usage:
			  restpad [flags]

			Flags:
		`))
		flag.PrintDefaults()
		fmt.Fprint(os.Stderr, heredoc.Doc(`

			Environment:
			  RESTPAD_OTEL_ENDPOINT      OTLP trace collector endpoint
			  RESTPAD_OTEL_INSECURE      Disable TLS for the trace exporter
			  RESTPAD_OTEL_SERVICE       Service name reported on spans
		`))
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("restpad %s (commit %s, built %s)\n", version, commit, date)
		return
	}

	settings, _, err := config.LoadSettings()
	if err != nil {
		log.Printf("settings load error: %v", err)
	}

	keys, _, bindErr := bindings.Load(config.Dir())
	if bindErr != nil {
		log.Printf("bindings load error: %v", bindErr)
		keys = bindings.DefaultMap()
	}

	client := httpclient.NewClient()

	provider, err := telemetry.New(telemetryCfg)
	if err != nil {
		if telemetryCfg.Enabled() {
			log.Printf("telemetry init error: %v", err)
		}
	} else {
		client.SetTelemetry(provider)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if shutdownErr := provider.Shutdown(ctx); shutdownErr != nil {
				log.Printf("telemetry shutdown: %v", shutdownErr)
			}
		}()
	}

	historyStore := history.NewStore(
		filepath.Join(config.Dir(), "history.json"),
		settings.HistoryMax,
	)

	if workspacePath == "" {
		workspacePath = filepath.Join(config.Dir(), "workspace.yaml")
	}
	ws, err := workspace.Load(workspacePath)
	if err != nil {
		log.Printf("workspace load error: %v", err)
		ws = workspace.New("default")
	}

	model := ui.New(ui.Config{
		Settings: settings,
		Theme:    theme.ByName(settings.Theme),
		Keys:     keys,
		Client:   client,
		ClientOptions: httpclient.Options{
			Timeout:            timeout,
			FollowRedirects:    follow,
			InsecureSkipVerify: insecure,
			ProxyURL:           proxyURL,
		},
		History:       historyStore,
		Workspace:     ws,
		WorkspacePath: workspacePath,
	})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		log.Fatalf("program error: %v", err)
	}
}
