package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	complaints "github.com/goliatone/go-complaints/components/complaints"
)

type dashboardCmd struct {
	Email string `required:"" help:"Email whose complaints are shown."`
	All   bool   `help:"List every complaint instead of the most recent ones."`
}

func (cmd *dashboardCmd) Run(ctx context.Context, g *Globals) error {
	log, err := g.logger()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck
	client, err := g.client(log)
	if err != nil {
		return err
	}
	records, err := client.ListComplaints(ctx)
	if err != nil {
		return err
	}
	view := complaints.Aggregate(records, cmd.Email)
	if !cmd.All {
		view.Full = view.Recent
	}
	return complaints.WriteDashboard(stdout, view)
}

type submitCmd struct {
	Email       string `required:"" help:"Email of the complainant."`
	Category    string `help:"Category name or code (defaults to the first catalog entry)."`
	Place       string `required:"" help:"Where the problem is."`
	Description string `required:"" help:"What is wrong."`
}

func (cmd *submitCmd) Run(ctx context.Context, g *Globals) error {
	log, err := g.logger()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck
	client, err := g.client(log)
	if err != nil {
		return err
	}
	svc, err := g.service(log, client)
	if err != nil {
		return err
	}
	defer svc.Close()

	if err := svc.Login(ctx, cmd.Email); err != nil {
		return err
	}
	err = svc.SubmitComplaint(ctx, complaints.ComplaintForm{
		Category:    cmd.Category,
		Place:       cmd.Place,
		Description: cmd.Description,
	})
	if notice := svc.State().Notice; notice != nil {
		fmt.Fprintln(stdout, notice.Message)
	}
	return err
}

type registerCmd struct {
	Name  string `required:"" help:"Display name."`
	Email string `required:"" help:"Account email."`
}

func (cmd *registerCmd) Run(ctx context.Context, g *Globals) error {
	log, err := g.logger()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck
	client, err := g.client(log)
	if err != nil {
		return err
	}
	svc, err := g.service(log, client)
	if err != nil {
		return err
	}
	defer svc.Close()

	err = svc.Register(ctx, cmd.Name, cmd.Email)
	if notice := svc.State().Notice; notice != nil {
		fmt.Fprintln(stdout, notice.Message)
	}
	return err
}

type usersCmd struct{}

func (cmd *usersCmd) Run(ctx context.Context, g *Globals) error {
	log, err := g.logger()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck
	client, err := g.client(log)
	if err != nil {
		return err
	}
	users, err := client.ListUsers(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE")
	for _, user := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", user.ID, user.Name, user.Email, user.Role)
	}
	return tw.Flush()
}

type pingCmd struct{}

func (cmd *pingCmd) Run(ctx context.Context, g *Globals) error {
	log, err := g.logger()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck
	client, err := g.client(log)
	if err != nil {
		return err
	}
	message, err := client.Ping(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "✓ %s: %s\n", g.APIURL, message)
	return nil
}
