// Package khata implements the ledger and loan accounting engine of a
// self-help-group (SHG) administration tool.
//
// The package is organized in three layers, leaf first:
//
//   - the entity store: typed, in-memory collections of members, groups,
//     products, savings, loans, repayments and meetings, persisted as one
//     atomic JSON snapshot (store.go, encode.go);
//   - the ledger engine: pure derivations over the append-only saving and
//     repayment rows — balances, EMI, outstanding, amortization schedules
//     (ledger.go);
//   - the aggregation engine: the memberwise, daywise, monthly and annual
//     report builders (reports_*.go).
//
// Savings and repayments are append-only ledger lines: corrections are new
// entries, never in-place edits, and every balance is derived by summing
// rows rather than read from a stored total.
package khata
