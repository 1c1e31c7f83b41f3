package main

import (
	"fmt"

	seoaudit "github.com/TravisXO/CanonicalSeoAuditor"
	"github.com/TravisXO/CanonicalSeoAuditor/sqlite"
)

// Run executes the audit command.
func (c *AuditCmd) Run(deps *Dependencies) error {
	page, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seoaudit.ErrorMessage(err))
		return err
	}

	result := deps.Auditor.Audit(deps.Ctx, page)
	fmt.Fprint(deps.Stdout, seoaudit.FormatResult(result))

	if !result.Success {
		return fmt.Errorf("audit of %s did not complete: %s", c.URL, result.ErrorMessage)
	}

	if c.Save {
		record := &seoaudit.AuditRecord{
			URL:         result.URL,
			ContentHash: sqlite.ContentHash(page.HTML),
			Result:      result,
		}
		if err := deps.Audits.SaveAudit(deps.Ctx, record); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", seoaudit.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "\nSaved audit %s\n", record.ID)
	}

	return nil
}
