package main

import (
	"fmt"

	"budgethub/internal/aggregate"
	"budgethub/internal/core"
	"budgethub/internal/render"
	"budgethub/internal/services"
)

type EntryFlags struct {
	Person   string `required:"" enum:"you,partner" help:"Who it was (you, partner)."`
	Amount   string `required:"" help:"Amount, e.g. 12.34 or 12,34."`
	Category string `help:"Category label."`
	Note     string `help:"Free-form note."`
}

func (f EntryFlags) entry() (services.Entry, error) {
	amount, err := core.ParseAmount(f.Amount)
	if err != nil {
		return services.Entry{}, &core.ValidationError{Field: "amount", Value: f.Amount, Err: core.ErrInvalidAmount}
	}
	return services.Entry{
		Person:   core.Person(f.Person),
		Amount:   amount,
		Category: f.Category,
		Note:     f.Note,
	}, nil
}

type contributeCmd struct {
	EntryFlags `embed:""`
}

func (c *contributeCmd) Run(rc *runContext) error {
	e, err := c.entry()
	if err != nil {
		return err
	}
	tx, err := rc.App.Service.AddContribution(rc.Ctx, e)
	if err != nil {
		return err
	}
	fmt.Fprintf(rc.Out, "Added contribution %s of %s\n", tx.ID, core.FormatFloat(tx.Amount))
	return nil
}

type spendCmd struct {
	EntryFlags `embed:""`
}

func (c *spendCmd) Run(rc *runContext) error {
	e, err := c.entry()
	if err != nil {
		return err
	}
	tx, err := rc.App.Service.AddExpense(rc.Ctx, e)
	if err != nil {
		return err
	}
	fmt.Fprintf(rc.Out, "Added expense %s of %s\n", tx.ID, core.FormatFloat(tx.Amount))
	return nil
}

type deleteCmd struct {
	ID string `arg:"" help:"Transaction id (see 'list')."`
}

func (c *deleteCmd) Run(rc *runContext) error {
	removed, err := rc.App.Service.DeleteTransaction(rc.Ctx, c.ID)
	if err != nil {
		return err
	}
	if !removed {
		fmt.Fprintln(rc.Out, "No transaction with id "+c.ID)
		return nil
	}
	fmt.Fprintln(rc.Out, "Deleted "+c.ID)
	return nil
}

type goalCmd struct {
	Name   string `help:"Goal name. Blank uses the default name."`
	Amount string `required:"" help:"Target amount, zero to clear."`
}

func (c *goalCmd) Run(rc *runContext) error {
	amount, err := core.ParseAmount(c.Amount)
	if err != nil {
		return &core.ValidationError{Field: "goal amount", Value: c.Amount, Err: core.ErrInvalidGoalAmount}
	}
	g, err := rc.App.Service.SetGoal(rc.Ctx, c.Name, amount)
	if err != nil {
		return err
	}
	fmt.Fprintf(rc.Out, "Goal set: %s (%s)\n", g.Name, core.FormatFloat(g.Amount))
	return nil
}

type dashboardCmd struct{}

func (c *dashboardCmd) Run(rc *runContext) error {
	fmt.Fprintln(rc.Out, render.Dashboard(rc.App.Service.Dashboard(rc.Ctx)))
	return nil
}

type listCmd struct {
	Person string `default:"all" enum:"all,you,partner" help:"Filter by person."`
	Type   string `default:"all" enum:"all,contribution,expense" help:"Filter by type."`
}

func (c *listCmd) Run(rc *runContext) error {
	txs := rc.App.Service.Transactions(rc.Ctx, aggregate.Filter{Person: c.Person, Type: c.Type})
	fmt.Fprintln(rc.Out, render.Transactions(txs))
	return nil
}
