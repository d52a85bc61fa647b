// Package cmdlib provides a read-only lookup service over a pre-built
// catalog of Linux commands, their manual-page sections, and a
// beginner-oriented category taxonomy. The catalog is produced offline by
// the ingest tool and never mutated by the serving process.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, http/).
package cmdlib
