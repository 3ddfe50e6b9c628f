package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/faftech/portfolio-admin/pkg/activity"
	"github.com/faftech/portfolio-admin/pkg/api"
	"github.com/faftech/portfolio-admin/pkg/config"
	"github.com/faftech/portfolio-admin/pkg/llm"
	"github.com/faftech/portfolio-admin/pkg/logging"
	"github.com/faftech/portfolio-admin/pkg/render"
	"github.com/faftech/portfolio-admin/pkg/session"
	"github.com/faftech/portfolio-admin/pkg/views"
)

// app holds everything a command needs, built once per invocation.
type app struct {
	cfg       config.Config
	logger    *zap.Logger
	client    *api.Client
	session   *session.Session
	activity  *activity.Store
	generator llm.Generator
	renderer  *render.Renderer
	format    render.Format
	out       io.Writer
	errOut    io.Writer
	in        io.Reader
}

// newApp loads configuration and acquires the session, the activity log and
// the text generator. Callers must call close.
func newApp(ctx context.Context, cmd *cobra.Command) (a *app, err error) {
	a = &app{
		renderer: render.New(),
		out:      cmd.OutOrStdout(),
		errOut:   cmd.ErrOrStderr(),
		in:       cmd.InOrStdin(),
	}

	a.format, err = getOutput()
	if err != nil {
		return a, err
	}

	a.cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return a, err
	}

	a.logger, err = logging.New(getVerbose())
	if err != nil {
		return a, err
	}

	a.logger.Debug("configuration loaded",
		zap.String("base_url", a.cfg.BaseURL),
		zap.String("environment", a.cfg.Environment),
		zap.String("ai_provider", a.cfg.AI.Provider))

	a.client = api.NewClient(a.cfg.BaseURL, api.WithLogger(a.logger))

	a.session, err = session.Acquire(session.NewStore(a.cfg.TokenPath))
	if err != nil {
		err = errors.Wrap(err, "failed to acquire session")
		return a, err
	}

	a.activity, err = activity.Open(a.cfg.ActivityDB, a.cfg.AdminName)
	if err != nil {
		return a, err
	}

	a.generator, err = llm.NewGenerator(ctx, llm.Settings{
		Provider: a.cfg.AI.Provider,
		Model:    a.cfg.AI.Model,
		APIKey:   a.cfg.AI.APIKey,
		BaseURL:  a.cfg.AI.BaseURL,
	}, a.logger)
	if err != nil {
		err = errors.Wrap(err, "failed to create text generator")
		return a, err
	}

	return a, err
}

func (a *app) close() {
	if a.activity != nil {
		err := a.activity.Close()
		if err != nil && a.logger != nil {
			a.logger.Warn("failed to close activity log", zap.Error(err))
		}
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// deps builds the editor collaborators. With assumeYes every confirmation
// is answered yes without prompting.
func (a *app) deps(assumeYes bool) (deps views.Deps) {
	var confirmer views.Confirmer = newLineConfirmer(a.in, a.errOut)
	if assumeYes {
		confirmer = views.AutoConfirm(true)
	}

	deps = views.Deps{
		Tokens:    a.session,
		Confirmer: confirmer,
		Alerter:   writerAlerter{out: a.errOut},
		Recorder:  a.activity,
		Logger:    a.logger,
	}
	return deps
}

// emit writes text for the text format and encodes data otherwise.
func (a *app) emit(text string, data interface{}) (err error) {
	if a.format == render.FormatText {
		_, err = fmt.Fprint(a.out, text)
		return err
	}

	err = render.Encode(a.out, a.format, data)
	return err
}

// record appends an activity entry, logging rather than failing on error.
func (a *app) record(ctx context.Context, entry activity.Entry) {
	_, err := a.activity.Record(ctx, entry)
	if err != nil {
		a.logger.Warn("failed to record activity", zap.String("action", entry.Action), zap.Error(err))
	}
}

// withApp runs fn with a fully built app.
func withApp(fn func(ctx context.Context, a *app, cmd *cobra.Command, args []string) (err error)) func(cmd *cobra.Command, args []string) (err error) {
	return func(cmd *cobra.Command, args []string) (err error) {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		var a *app
		a, err = newApp(ctx, cmd)
		if a != nil {
			defer a.close()
		}
		if err != nil {
			return err
		}

		err = fn(ctx, a, cmd, args)
		return err
	}
}

// isTerminal reports whether stderr looks interactive enough for a spinner.
func isTerminal(w io.Writer) (ok bool) {
	f, isFile := w.(*os.File)
	if !isFile {
		return ok
	}

	info, err := f.Stat()
	if err != nil {
		return ok
	}

	ok = info.Mode()&os.ModeCharDevice != 0
	return ok
}
