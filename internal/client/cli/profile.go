package cli

import (
	"context"

	"github.com/myflix/myflix-client/internal/client/models"
)

// EditProfile prompts for new values; an empty answer keeps the current
// one. Only changed fields are sent.
func (a *App) EditProfile(ctx context.Context) error {
	current := a.authService.CurrentUser(ctx).User
	if current == nil {
		current = &models.User{}
	}

	var upd models.ProfileUpdate

	username, err := getSimpleText(a.reader, "Username ["+current.Username+"] (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if username != "" && username != current.Username {
		upd.Username = username
	}

	a.println("New password (empty to keep)")
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)
	if len(password) > 0 {
		upd.Password = string(password)
	}

	email, err := getSimpleText(a.reader, "Email ["+current.Email+"] (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if email != "" && email != current.Email {
		upd.Email = email
	}

	birthday, err := a.readDate("Birthday [" + current.Birthday.String() + "] (YYYY-MM-DD, empty to keep)")
	if err != nil {
		return err
	}
	if birthday != nil && !birthday.Equal(current.Birthday.Time) {
		upd.Birthday = birthday
	}

	if upd == (models.ProfileUpdate{}) {
		a.println("Nothing to update.")
		return nil
	}

	if _, err := a.authService.UpdateProfile(ctx, upd); err != nil {
		return err
	}
	a.println("User successfully updated")
	return nil
}

// DeleteAccount asks for confirmation, deletes the account on the server and
// drops the local session.
func (a *App) DeleteAccount(ctx context.Context) error {
	name := a.authService.CurrentUser(ctx).Username()
	ok, err := getConfirmation(a.reader, "Delete account "+name+" permanently?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		a.println("Cancelled.")
		return nil
	}

	if err := a.authService.DeleteAccount(ctx); err != nil {
		return err
	}
	a.println("User successfully deleted")
	return nil
}
