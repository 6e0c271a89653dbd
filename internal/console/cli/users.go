package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/roadfleet/roadfleet/internal/console/api"
)

func (a *App) Users(ctx context.Context, args []string) {
	if !a.requireSession(ctx) {
		return
	}

	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "list":
		a.listUsers(ctx)
	case "edit":
		a.editUser(ctx)
	case "block":
		a.setUserStatus(ctx, "blocked")
	case "unblock":
		a.setUserStatus(ctx, "active")
	case "remove":
		a.removeUser(ctx)
	default:
		printlnFn("Usage: users [list|edit|block|unblock|remove]")
	}
}

func (a *App) listUsers(ctx context.Context) {
	if err := a.users.FetchAll(ctx); err != nil {
		log.Printf("error: %v", err)
	}

	snap := a.users.Snapshot()
	reportStatus(snap.Status, snap.Err)

	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tCITY\tGENDER\tCNIC\tROLE\tSTATUS\tCREATED")
	for _, u := range snap.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			u.ID, u.Name, u.Email, u.City, u.Gender, u.CNIC, u.Role, u.Status, u.CreatedAt)
	}
	w.Flush()
}

func (a *App) editUser(ctx context.Context) {
	id, err := GetSimpleText(a.reader, "User ID", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	var patch api.UserDetailsPatch
	if patch.Name, err = GetOptionalText(a.reader, "Name", os.Stdout); err != nil {
		log.Printf("error: %v", err)
		return
	}
	if patch.CNIC, err = GetOptionalText(a.reader, "CNIC (13 digits)", os.Stdout); err != nil {
		log.Printf("error: %v", err)
		return
	}
	if patch.Gender, err = GetOptionalText(a.reader, "Gender", os.Stdout); err != nil {
		log.Printf("error: %v", err)
		return
	}
	if patch.Status, err = GetOptionalText(a.reader, "Status (active/blocked)", os.Stdout); err != nil {
		log.Printf("error: %v", err)
		return
	}

	if err := a.users.UpdateDetails(ctx, id, patch); err != nil {
		log.Printf("error: %v", err)
		return
	}
	printlnFn("User updated.")
}

func (a *App) setUserStatus(ctx context.Context, status string) {
	id, err := GetSimpleText(a.reader, "User ID", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if err := a.users.SetStatus(ctx, id, status); err != nil {
		log.Printf("error: %v", err)
		return
	}
	printlnFn(fmt.Sprintf("User is now %s.", status))
}

func (a *App) removeUser(ctx context.Context) {
	id, err := GetSimpleText(a.reader, "User ID", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if err := a.users.Remove(ctx, id); err != nil {
		log.Printf("error: %v", err)
		return
	}
	printlnFn("User removed.")
}
