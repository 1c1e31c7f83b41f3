package main

import (
	"fmt"

	seoaudit "github.com/TravisXO/CanonicalSeoAuditor"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	record, err := deps.Audits.FindAuditByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seoaudit.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Audit %s (%s)\n\n", record.ID, record.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprint(deps.Stdout, seoaudit.FormatResult(record.Result))
	return nil
}
