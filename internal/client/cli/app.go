// Package cli is the terminal shell of the owner panel: a small REPL that
// signs in as an owner identity, shows the "my rental cars" screen and
// routes edit, delete and password-change actions.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/patiparn/rodchao/internal/client/api"
	"github.com/patiparn/rodchao/internal/client/config"
	"github.com/patiparn/rodchao/internal/client/notify"
	"github.com/patiparn/rodchao/internal/client/panel"
	"github.com/patiparn/rodchao/internal/client/store"
	"github.com/patiparn/rodchao/internal/logging"
	"github.com/patiparn/rodchao/internal/models"
)

// App wires the panel stack together and exposes one method per REPL
// command.
type App struct {
	config    *config.Config
	apiClient api.Client
	store     *store.Store
	panel     *panel.Panel
	notifier  notify.Notifier
	log       logging.Logger
	reader    *bufio.Reader
	out       io.Writer
}

// NewApp builds the application against the real terminal and the backend
// named in cfg.
func NewApp(cfg *config.Config, log logging.Logger) *App {
	reader := bufio.NewReader(os.Stdin)
	return newApp(cfg, log, reader, os.Stdout, api.NewHTTPClient(cfg.APIBaseAddr, cfg.RequestTimeout))
}

// newApp is the seam constructors and tests share.
func newApp(cfg *config.Config, log logging.Logger, reader *bufio.Reader, out io.Writer, apiClient api.Client) *App {
	a := &App{
		config:    cfg,
		apiClient: apiClient,
		notifier:  notify.NewWriterNotifier(out),
		log:       log,
		reader:    reader,
		out:       out,
	}

	gate := NewPromptConfirmer(reader, out)
	a.store = store.New(apiClient, a.notifier, gate, log)
	a.panel = panel.New(a.store, a.handOffEdit, log)
	return a
}

// Run enters the REPL; it returns when the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer a.apiClient.Close()

	if a.config.OwnerEmail != "" {
		a.panel.SetOwner(ctx, a.config.OwnerEmail)
		a.panel.Render(a.out)
	}

	scanner := bufio.NewScanner(a.reader)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) status() string {
	if owner := a.panel.Owner(); owner != "" {
		return owner
	}
	return "ยังไม่ได้เลือกผู้ใช้"
}

func (a *App) hasOwner() bool {
	return a.panel.Owner() != ""
}

// requireOwner tells the user to pick an identity first when none is set.
func (a *App) requireOwner() bool {
	if a.hasOwner() {
		return true
	}
	fmt.Fprintln(a.out, "กรุณาเลือกผู้ใช้ก่อนด้วยคำสั่ง user")
	return false
}

// handOffEdit is the editor collaborator boundary: the panel fires the
// selected listing at it and forgets. The shell just announces the handoff;
// the edit flow owns any subsequent reload.
func (a *App) handOffEdit(car models.Car) {
	fmt.Fprintf(a.out, "กำลังเปิดหน้าแก้ไข: %s [%s]\n", car.Title(), car.ID)
}

// SwitchUser prompts for an owner email and re-enters the panel under that
// identity.
func (a *App) SwitchUser(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "กรอกอีเมลผู้ใช้", a.out)
	if err != nil {
		return err
	}
	a.panel.SetOwner(ctx, email)
	a.panel.Render(a.out)
	return nil
}

// List renders the panel in its current phase.
func (a *App) List(ctx context.Context) error {
	if !a.requireOwner() {
		return nil
	}
	a.panel.Render(a.out)
	return nil
}

// Reload re-fetches the owner's listings and renders the result.
func (a *App) Reload(ctx context.Context) error {
	if !a.requireOwner() {
		return nil
	}
	a.panel.Reload(ctx)
	a.panel.Render(a.out)
	return nil
}

// Delete prompts for a listing id and routes it through the confirmation
// gate and the store.
func (a *App) Delete(ctx context.Context) error {
	if !a.requireOwner() {
		return nil
	}
	id, err := GetSimpleText(a.reader, "กรอกรหัสรถที่ต้องการลบ", a.out)
	if err != nil {
		return err
	}
	a.panel.Delete(ctx, id)
	a.panel.Render(a.out)
	return nil
}

// Edit prompts for a listing id and hands the listing to the editor flow.
func (a *App) Edit(ctx context.Context) error {
	if !a.requireOwner() {
		return nil
	}
	id, err := GetSimpleText(a.reader, "กรอกรหัสรถที่ต้องการแก้ไข", a.out)
	if err != nil {
		return err
	}
	if err := a.panel.Edit(id); err != nil {
		a.notifier.Notify(ctx, notify.KindError, notify.TitleError, err.Error())
	}
	return nil
}
