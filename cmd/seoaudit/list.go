package main

import (
	"fmt"

	seoaudit "github.com/TravisXO/CanonicalSeoAuditor"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := seoaudit.AuditFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	records, err := deps.Audits.FindAudits(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seoaudit.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No audits found. Use 'seoaudit audit --save' to store one.")
		return nil
	}

	fmt.Fprint(deps.Stdout, seoaudit.FormatRecords(records))
	return nil
}
