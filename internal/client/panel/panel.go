// Package panel derives the rendered view of the "my rental cars" screen
// from store state and wires user actions back into the store.
package panel

import (
	"context"
	"fmt"
	"io"

	"github.com/patiparn/rodchao/internal/client/store"
	"github.com/patiparn/rodchao/internal/logging"
	"github.com/patiparn/rodchao/internal/models"
)

// Phase is the rendered state of the panel, derived purely from the store's
// loading flag and collection size.
type Phase string

const (
	PhaseLoading   Phase = "loading"
	PhaseEmpty     Phase = "empty"
	PhasePopulated Phase = "populated"
)

// EditFunc hands the selected listing to the external editor flow. The
// panel performs no local mutation for edits; the edit flow triggers its own
// reload when it completes.
type EditFunc func(car models.Car)

var toneColors = map[models.Tone]string{
	models.ToneSuccess: "\x1b[32m",
	models.ToneWarning: "\x1b[33m",
	models.ToneDanger:  "\x1b[31m",
}

const colorReset = "\x1b[0m"

// Panel orchestrates the owner's listing screen: it triggers reloads on
// owner identity changes, renders the current phase, and routes edit and
// delete actions.
type Panel struct {
	store  *store.Store
	onEdit EditFunc
	log    logging.Logger
	owner  string
}

func New(s *store.Store, onEdit EditFunc, log logging.Logger) *Panel {
	return &Panel{store: s, onEdit: onEdit, log: log}
}

// Owner returns the current owner identity, "" when signed out.
func (p *Panel) Owner() string { return p.owner }

// SetOwner switches the panel to a new owner identity. A changed identity
// discards the old collection and triggers a fresh reload; setting the same
// identity again is a no-op. An empty identity clears the panel.
func (p *Panel) SetOwner(ctx context.Context, ownerEmail string) {
	if ownerEmail == p.owner {
		return
	}
	p.owner = ownerEmail
	if ownerEmail == "" {
		p.store.Clear()
		return
	}
	p.store.Reload(ctx, ownerEmail)
}

// Reload re-fetches the current owner's listings.
func (p *Panel) Reload(ctx context.Context) {
	p.store.Reload(ctx, p.owner)
}

// Delete routes a delete action through the confirmation gate and the store.
func (p *Panel) Delete(ctx context.Context, id string) {
	p.store.Remove(ctx, id, p.owner)
}

// Edit hands the listing with the given id to the editor collaborator.
// Unknown ids are reported as an error so the shell can tell the user.
func (p *Panel) Edit(id string) error {
	cars, _ := p.store.Snapshot()
	for _, c := range cars {
		if c.ID == id {
			p.onEdit(c)
			return nil
		}
	}
	return fmt.Errorf("ไม่พบรถรหัส %s", id)
}

// Phase derives the current phase from store state.
func (p *Panel) Phase() Phase {
	cars, loading := p.store.Snapshot()
	switch {
	case loading:
		return PhaseLoading
	case len(cars) == 0:
		return PhaseEmpty
	default:
		return PhasePopulated
	}
}

// Render writes the panel for the current phase. Rows appear in server
// order, one per listing, with the formatted fields and a colored status
// badge.
func (p *Panel) Render(w io.Writer) {
	cars, loading := p.store.Snapshot()

	if loading {
		fmt.Fprintln(w, "กำลังโหลดข้อมูลรถของคุณ...")
		return
	}
	if len(cars) == 0 {
		fmt.Fprintln(w, "คุณยังไม่มีรถให้เช่า เพิ่มรถคันแรกของคุณได้เลย")
		return
	}

	fmt.Fprintf(w, "รถให้เช่าของคุณ (%d คัน)\n", len(cars))
	for _, c := range cars {
		tone := c.Status.Tone()
		fmt.Fprintf(w, "[%s] %s  %s%s%s\n", c.ID, c.Title(),
			toneColors[tone], c.Status.Label(), colorReset)
		fmt.Fprintf(w, "      ทะเบียน: %s  สี: %s  เครื่องยนต์: %s  เชื้อเพลิง: %s\n",
			c.DisplayPlateNumber(), c.DisplayColor(),
			c.DisplayEngineSize(), c.DisplayFuelType())
		fmt.Fprintf(w, "      ราคา: %s  รูปภาพ: %s\n", c.DisplayPrice(), c.CoverImage())
	}
}
