// Package rentroll provides the record keeping and period analytics behind a
// small rental property portfolio. It is designed to be local-first and
// auditable, the whole portfolio living in one human-readable file.
//
// The core functionalities include:
//   - Record Management: buildings, units, tenants, leases, rent payments and
//     maintenance expenses, with referential integrity on every mutation.
//   - Period Analytics: a stateless engine that resolves, for any month of a
//     calendar or financial year, which lease is active on each unit, which
//     payments count toward that month, and what the unit's payment status is.
//   - Yearly Reports: the dashboard totals, the unit-by-month rent matrix,
//     the month status board and the occupancy timeline.
//   - Data Persistence: encoding and decoding of all records to and from a
//     JSONL registry file, plus a one-shot importer for legacy database dumps.
//
// This package serves as the foundational logic for the `srp` command-line
// tool.
package rentroll
