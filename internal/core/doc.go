// Package core provides the section-building pipeline for survey exports.
//
// This package is the heart of the report builder, containing all domain logic
// independent of any command or transport layer. It can be used by the batch
// command, the read API, or tests without modification.
//
// # Architecture
//
// A build is a single forward pass over a [Catalog]:
//
//  1. Each [CatalogEntry] names one source file in the data directory.
//  2. The file is split into lines; the first line is the header row.
//  3. [ParseLine] turns each data line into a [ParsedRow] keyed by raw header.
//  4. [NormalizeRow] re-keys the row through the alias table ([Canonical]).
//  5. [Include] drops aggregate and metadata rows (the sentinel set).
//  6. [Assemble] converts the surviving rows into a [Section].
//  7. [WriteSections] persists every section, in catalog order, as one JSON array.
//
// Files are processed in parallel by [Pipeline.Build]; results are slotted by
// catalog position so the output order never depends on which file finished first.
//
// # Aggregation
//
// The reporting side reads the artifact and calls [SumCategories],
// [CategoryTotals.Normalize] and [SumPolarity] per rendering request. These are
// pure functions over [SurveyRow] values.
//
// # Error Handling
//
// Only [ErrWriteFailure] is fatal to a build. Missing files, empty files and
// malformed rows are reported and skipped. [MapError] maps any of them to a
// coded message:
//
//   - FILE001-FILE002: Source file errors (missing or empty)
//   - ROW001-ROW003: Row errors (malformed, out of range, duplicate subject)
//   - OUT001: Artifact write failure
//   - SEC001: Unknown section id on the read side
package core
