package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/coinviewer/internal/client/client"
	"github.com/dmitrijs2005/coinviewer/internal/client/config"
	"github.com/dmitrijs2005/coinviewer/internal/client/models"
	"github.com/dmitrijs2005/coinviewer/internal/client/repositories/coins"
	"github.com/dmitrijs2005/coinviewer/internal/client/repositories/details"
	"github.com/dmitrijs2005/coinviewer/internal/client/viewstate"
	"github.com/dmitrijs2005/coinviewer/internal/logging"
	"golang.org/x/term"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	coins   coins.Repository
	details details.Repository

	list   *viewstate.CoinListHolder
	detail *viewstate.CoinDetailHolder
	coinID string

	in          io.Reader
	interactive bool
}

func NewApp(c *config.Config, l logging.Logger) (*App, error) {
	apiClient, err := client.NewCoinPaprikaClient(c.BaseURL, c.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("api client init error: %w", err)
	}

	a := newApp(c, l, coins.NewAPIRepository(apiClient, l), details.NewAPIRepository(apiClient, l), os.Stdin)
	a.interactive = term.IsTerminal(int(os.Stdin.Fd()))
	return a, nil
}

func newApp(c *config.Config, l logging.Logger, cr coins.Repository, dr details.Repository, in io.Reader) *App {
	if l == nil {
		l = logging.Nop()
	}
	return &App{config: c, logger: l, coins: cr, details: dr, in: in}
}

func (a *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run opens the coin list screen and serves commands until the user exits,
// stdin is exhausted or the process is signalled.
func (a *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	a.initSignalHandler(cancelFunc)

	a.logger.Info(ctx, "Starting app...", "base_url", a.config.BaseURL)

	a.list = viewstate.NewCoinListHolder(ctx, a.coins, a.logger)
	defer a.closeScreens()

	if a.interactive {
		printlnFn("CoinViewer CLI (type 'help' for commands)")
	}
	runREPL(ctx, a, a.prompt, bufio.NewScanner(a.in))
}

// prompt is empty when stdin is not a terminal so piped output stays clean.
func (a *App) prompt() string {
	if !a.interactive {
		return ""
	}
	if a.detail != nil {
		return fmt.Sprintf("coins %s> ", a.coinID)
	}
	return "coins> "
}

func (a *App) closeScreens() {
	a.closeDetail()
	if a.list != nil {
		a.list.Close()
	}
}

func (a *App) closeDetail() {
	if a.detail != nil {
		a.detail.Close()
		a.detail = nil
		a.coinID = ""
	}
}

// List renders the coin list screen, waiting for any fetch in progress.
func (a *App) List(ctx context.Context) error {
	a.list.Wait()
	printLines(renderList(a.list.Snapshot()))
	return nil
}

// Refresh is the pull-to-refresh gesture on the list screen.
func (a *App) Refresh(ctx context.Context) error {
	printlnFn("Refreshing...")
	a.list.Refresh()
	return a.List(ctx)
}

// Show navigates to the detail screen of coinID. The previous detail screen,
// if any, is torn down first.
func (a *App) Show(ctx context.Context, coinID string) error {
	if err := models.ValidateCoinID(coinID); err != nil {
		printlnFn(fmt.Sprintf("%q is not a valid coin id", coinID))
		return err
	}

	a.closeDetail()
	a.detail = viewstate.NewCoinDetailHolder(ctx, a.details, a.logger)
	a.coinID = coinID

	a.detail.FetchCoinDetails(coinID)
	a.detail.Wait()
	printLines(renderDetail(a.detail.Snapshot()))
	return nil
}

// Back leaves the detail screen.
func (a *App) Back(ctx context.Context) error {
	a.closeDetail()
	return nil
}

func printLines(lines []string) {
	for _, l := range lines {
		printlnFn(l)
	}
}
