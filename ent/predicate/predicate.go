// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Answer is the predicate function for answer builders.
type Answer func(*sql.Selector)

// Evaluation is the predicate function for evaluation builders.
type Evaluation func(*sql.Selector)

// LLMCall is the predicate function for llmcall builders.
type LLMCall func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// Report is the predicate function for report builders.
type Report func(*sql.Selector)

// Resume is the predicate function for resume builders.
type Resume func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)
