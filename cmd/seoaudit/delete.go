package main

import (
	"fmt"

	seoaudit "github.com/TravisXO/CanonicalSeoAuditor"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Audits.DeleteAudit(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seoaudit.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted audit %s\n", c.ID)
	return nil
}
