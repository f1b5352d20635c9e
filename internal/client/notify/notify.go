// Package notify carries transient success/error messages from the panel's
// flows to whatever surface presents them. The CLI prints them; tests
// capture them.
package notify

import (
	"context"
	"fmt"
	"io"
)

// Kind classifies a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Generic titles used across the panel's flows.
const (
	TitleError   = "ข้อผิดพลาด"
	TitleSuccess = "สำเร็จ"
)

// Notifier renders one transient message. Implementations must not block
// the calling flow on user interaction.
type Notifier interface {
	Notify(ctx context.Context, kind Kind, title string, message string)
}

// WriterNotifier prints notifications as single lines, prefixed by kind.
type WriterNotifier struct {
	w io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Notify(_ context.Context, kind Kind, title string, message string) {
	mark := "✔"
	if kind == KindError {
		mark = "✖"
	}
	fmt.Fprintf(n.w, "%s %s: %s\n", mark, title, message)
}

// Func adapts a plain function to the Notifier interface.
type Func func(ctx context.Context, kind Kind, title string, message string)

func (f Func) Notify(ctx context.Context, kind Kind, title string, message string) {
	f(ctx, kind, title, message)
}
