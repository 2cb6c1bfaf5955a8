package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/triply-app/triply/internal/advisor"
	"github.com/triply-app/triply/internal/cli/formatter"
	"github.com/triply-app/triply/internal/contract"
)

func newWatchCmd(app *App) *cobra.Command {
	var tripInput string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Live leave-by view that re-evaluates every 30 seconds",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tripID, err := resolveTripID(ctx, app, tripInput)
			if err != nil {
				return err
			}

			// Without a terminal there is nothing to keep alive; print the
			// one-shot advisory instead.
			if !isatty.IsTerminal(os.Stdout.Fd()) {
				resp, err := app.Advise.Advise(ctx, contract.NewAdviseRequest(tripID))
				if err != nil {
					return err
				}
				fmt.Println(formatter.FormatAdvise(resp))
				return nil
			}

			m := newWatchModel(app, tripID)
			p := tea.NewProgram(m, tea.WithAltScreen())
			_, err = p.Run()
			m.stop()
			return err
		},
	}

	cmd.Flags().StringVar(&tripInput, "trip", "", "Trip name, UUID, or UUID prefix")
	_ = cmd.MarkFlagRequired("trip")

	return cmd
}

type watchKeyMap struct {
	Refresh key.Binding
	Quit    key.Binding
}

func defaultWatchKeyMap() watchKeyMap {
	return watchKeyMap{
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "resync alerts")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type watchTickMsg time.Time

type adviseResultMsg struct {
	resp *contract.AdviseResponse
	err  error
}

type syncResultMsg struct {
	accepted int
	err      error
}

// watchModel renders the live advisory view. The advisor loop runs in its
// own goroutine and owns the nudge slot; the model polls it on each tick
// and fetches the pair table through the advise service.
type watchModel struct {
	app    *App
	tripID string

	loop   *advisor.Advisor
	cancel context.CancelFunc

	interval time.Duration
	keys     watchKeyMap

	resp     *contract.AdviseResponse
	err      error
	syncInfo string
}

func newWatchModel(app *App, tripID string) *watchModel {
	interval := app.AdvisorInterval
	if interval <= 0 {
		interval = advisor.DefaultInterval
	}

	opts := []advisor.Option{advisor.WithInterval(interval)}
	loop := advisor.New(tripID, app.Activities, app.Settings, app.Sink, opts...)

	loopCtx, cancel := context.WithCancel(context.Background())
	go loop.Start(loopCtx)

	return &watchModel{
		app:      app,
		tripID:   tripID,
		loop:     loop,
		cancel:   cancel,
		interval: interval,
		keys:     defaultWatchKeyMap(),
	}
}

func (m *watchModel) stop() {
	m.cancel()
	m.loop.Wait()
}

func (m *watchModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m *watchModel) fetchAdvice() tea.Cmd {
	return func() tea.Msg {
		resp, err := m.app.Advise.Advise(context.Background(), contract.NewAdviseRequest(m.tripID))
		return adviseResultMsg{resp: resp, err: err}
	}
}

func (m *watchModel) syncAlerts() tea.Cmd {
	return func() tea.Msg {
		accepted, err := m.app.Advise.RecomputeSchedules(context.Background(), m.tripID, time.Now())
		return syncResultMsg{accepted: accepted, err: err}
	}
}

func (m *watchModel) Init() tea.Cmd {
	return tea.Batch(m.fetchAdvice(), m.tick())
}

func (m *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case watchTickMsg:
		return m, tea.Batch(m.fetchAdvice(), m.tick())

	case adviseResultMsg:
		m.resp = msg.resp
		m.err = msg.err
		return m, nil

	case syncResultMsg:
		if msg.err != nil {
			m.syncInfo = "resync failed: " + msg.err.Error()
		} else {
			m.syncInfo = fmt.Sprintf("rescheduled %d alert(s)", msg.accepted)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			return m, tea.Batch(m.syncAlerts(), m.fetchAdvice())
		}
	}

	return m, nil
}

func (m *watchModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header("Watching trip "+formatter.TruncID(m.tripID)) + "\n\n")

	if nudge := m.loop.Current(); nudge != nil {
		b.WriteString(formatter.FormatNudge(nudge) + "\n\n")
	}

	switch {
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("error: "+m.err.Error()) + "\n")
	case m.resp != nil:
		b.WriteString(formatter.FormatAdvise(m.resp) + "\n")
	default:
		b.WriteString(formatter.Dim("evaluating...") + "\n")
	}

	if m.syncInfo != "" {
		b.WriteString(formatter.Dim(m.syncInfo) + "\n")
	}
	b.WriteString("\n" + formatter.Dim("r resync alerts · q quit"))

	return b.String()
}
