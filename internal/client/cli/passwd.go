package cli

import (
	"bytes"
	"context"

	"github.com/patiparn/rodchao/internal/client/api"
	"github.com/patiparn/rodchao/internal/client/notify"
)

// minPasswordLen mirrors the backend's validation so the obvious case fails
// fast without a round trip.
const minPasswordLen = 6

// Passwd runs the two-step password change: verify the current password
// first, then submit the new one. Every outcome is reported through the
// notification sink; the collection state is untouched throughout.
func (a *App) Passwd(ctx context.Context) error {
	if !a.requireOwner() {
		return nil
	}
	email := a.panel.Owner()

	current, err := GetPassword(a.out, "กรอกรหัสผ่านปัจจุบัน: ")
	if err != nil {
		return err
	}

	ok, err := a.apiClient.VerifyPassword(ctx, email, string(current))
	if err != nil {
		a.notifier.Notify(ctx, notify.KindError, notify.TitleError, api.UserMessage(err))
		return nil
	}
	if !ok {
		a.notifier.Notify(ctx, notify.KindError, notify.TitleError, "รหัสผ่านปัจจุบันไม่ถูกต้อง")
		return nil
	}

	newPw, err := GetPassword(a.out, "กรอกรหัสผ่านใหม่: ")
	if err != nil {
		return err
	}
	confirmPw, err := GetPassword(a.out, "ยืนยันรหัสผ่านใหม่: ")
	if err != nil {
		return err
	}

	if len(newPw) < minPasswordLen {
		a.notifier.Notify(ctx, notify.KindError, notify.TitleError, "รหัสผ่านใหม่ต้องมีอย่างน้อย 6 ตัวอักษร")
		return nil
	}
	if !bytes.Equal(newPw, confirmPw) {
		a.notifier.Notify(ctx, notify.KindError, notify.TitleError, "รหัสผ่านใหม่ไม่ตรงกัน")
		return nil
	}

	if err := a.apiClient.ChangePassword(ctx, email, string(current), string(newPw)); err != nil {
		a.notifier.Notify(ctx, notify.KindError, notify.TitleError, api.UserMessage(err))
		return nil
	}

	a.notifier.Notify(ctx, notify.KindSuccess, notify.TitleSuccess, "เปลี่ยนรหัสผ่านเรียบร้อยแล้ว")
	return nil
}
