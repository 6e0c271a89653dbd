package cli

import (
	"context"
	"log"
	"os"

	"github.com/roadfleet/roadfleet/internal/common"
)

func (a *App) Login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, password); err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return
	}
	log.Printf("Login successful")
}

func (a *App) Logout(ctx context.Context) {
	if err := a.session.Logout(ctx); err != nil {
		log.Printf("error: %v", err)
		return
	}
	log.Printf("Logged out")
}
