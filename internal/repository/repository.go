// Package repository contains the logic for direct database interactions.
//
// Each repository owns the SQL for one table. Queries use pgx named
// arguments and scan rows into model structs by column name.
package repository
