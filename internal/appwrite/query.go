// internal/appwrite/query.go
package appwrite

import "fmt"

// Query builders for list operations. The remote store accepts these as
// repeated queries[] parameters in its string filter syntax. Only the
// operators the handlers need are implemented; this is not a general
// query language binding.

func QueryLimit(n int) string { return fmt.Sprintf("limit(%d)", n) }

func QueryOffset(n int) string { return fmt.Sprintf("offset(%d)", n) }

func QueryOrderAsc(attr string) string { return fmt.Sprintf("orderAsc(%q)", attr) }

func QueryOrderDesc(attr string) string { return fmt.Sprintf("orderDesc(%q)", attr) }

func QueryEqual(attr, value string) string { return fmt.Sprintf("equal(%q, [%q])", attr, value) }
