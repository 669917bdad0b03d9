// Package analysis orchestrates the per-text content-analysis stages:
// named-entity extraction, film mention detection, semantic embedding, and
// topic clustering.
//
// Only mention detection is implemented in this repository; the other
// stages are external collaborators reached through the interfaces declared
// here. The pipeline zips per-text results positionally and tolerates
// missing collaborators, so a deployment can run mention-only analysis
// without stubbing models.
package analysis
