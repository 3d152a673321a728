// Package scaladoc resolves short keyword queries such as "list" or
// "im queue" into Scala API documentation URLs.
//
// Documentation indexes (the official site and locally generated docs) are
// reduced to flat cache files of relative page links. A query is matched
// against every cache line and the best matches are returned as URLs.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, http/, goquery/).
package scaladoc
