package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/logger"
	"hotel/transport/console/menu"
	"hotel/transport/console/request"
	"hotel/transport/console/response"
	"hotel/transport/console/router"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	menuTitle     = "Hotel Menu"
	exitOption    = "0"
	exitLabel     = "Exit"
	exitMessage   = "Exiting the system..."
	shutdownAfter = 5 * time.Second
)

type Console struct {
	Config *config.Config
	Router router.Router
	Otel   otel.Otel
	in     io.Reader
	out    io.Writer
}

func New(cfg *config.Config, r router.Router, ot otel.Otel) *Console {
	return &Console{
		Config: cfg,
		Router: r,
		Otel:   ot,
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// WithIO replaces the standard input and output of the session.
func (c *Console) WithIO(in io.Reader, out io.Writer) *Console {
	c.in = in
	c.out = out

	return c
}

func (c *Console) Serve() {
	c.setupGracefulShutdown()

	log.Info().Str("app", c.Config.App.Name).Str("operator", c.Config.App.Operator).Msg("Starting up hotel console.")

	if err := c.Run(context.Background()); err != nil {
		log.Error().Err(err).Msg("Console session ended with an error")
	}

	c.shutdown()
}

// Run serves menu options until the operator exits, the input ends or ctx is
// canceled.
func (c *Console) Run(ctx context.Context) error {
	m := menu.New()
	c.Router.SetupRoutes(m)

	res := response.New(c.out)
	session := request.New(ctx, bufio.NewScanner(c.in), res, c.Config.Console.MaxAttempts)

	for {
		m.Render(res, menuTitle, exitLabel)

		option, err := session.Ask("Choose an option: ")
		if errors.Is(err, io.EOF) {
			res.WithMessage("\n" + exitMessage)

			return nil
		}

		if err != nil {
			return fmt.Errorf("reading menu option: %w", err)
		}

		if option == exitOption {
			res.WithMessage(exitMessage)

			return nil
		}

		handler, ok := m.Lookup(option)
		if !ok {
			res.WithError(failure.ValidationFromString(fmt.Sprintf("invalid option %q", option)))

			continue
		}

		c.dispatch(session, res, option, handler)
	}
}

// dispatch runs handler with the operator and a fresh request ID in its context.
func (c *Console) dispatch(session *request.Request, res *response.Writer, option string, handler menu.HandlerFunc) {
	ctx := context.WithValue(session.Context(), constant.ContextKeyOperator, c.Config.App.Operator)
	ctx = context.WithValue(ctx, constant.ContextKeyRequestID, uuid.NewString())

	ctx, scope := c.Otel.NewScope(ctx, constant.OtelConsoleScopeName, constant.OtelConsoleScopeName+".Dispatch")
	defer scope.End()

	scope.SetMenuOption(option)

	logger.FromContext(ctx).Debug().Str("option", option).Msg("menu option selected")

	handler(session.WithContext(ctx), res)
}

func (c *Console) setupGracefulShutdown() {
	signals := make(chan os.Signal, 1)

	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	go c.respondToSignal(signals)
}

func (c *Console) respondToSignal(done chan os.Signal) {
	<-done

	defer os.Exit(0)

	log.Warn().Msg("Received interrupt. Shutting down now.")

	c.shutdown()
}

func (c *Console) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownAfter)
	defer cancel()

	if err := c.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")

		return
	}

	log.Info().Msg("Hotel console stopped.")
}
