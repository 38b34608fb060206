package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

var stdout io.Writer = os.Stdout

type cli struct {
	Globals

	Serve      serveCmd      `cmd:"" help:"Serve a single-user complaints client over HTTP, JSON and WebSocket."`
	Dashboard  dashboardCmd  `cmd:"" help:"Print the dashboard for an email."`
	Submit     submitCmd     `cmd:"" help:"File a new complaint."`
	Register   registerCmd   `cmd:"" help:"Create an account on the remote service."`
	Users      usersCmd      `cmd:"" help:"List registered users."`
	Ping       pingCmd       `cmd:"" help:"Check that the remote service is reachable."`
	Categories categoriesCmd `cmd:"" help:"Inspect or extend the category catalog."`
}

func main() {
	// A missing .env file is fine; the environment and flags still apply.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var app cli
	kctx := kong.Parse(&app,
		kong.Name("complaintsctl"),
		kong.Description("Client for the citizen complaint tracking service."),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	err := kctx.Run(&app.Globals)
	kctx.FatalIfErrorf(err)
}
