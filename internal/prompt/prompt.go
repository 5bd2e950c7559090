// Package prompt builds the instruction given to the answer generator.
package prompt

import "fmt"

const (
	documentTemplate = "You are an educational assistant. Given the document content below, answer the question as if teaching a grade %d student:\n\nDocument:\n%s\n\nQuestion: %s"
	questionTemplate = "Answer this question as if teaching a grade %d student:\n%s"
)

// Build returns the teaching instruction for question at grade. Any non-empty
// document, whitespace included, is embedded verbatim ahead of the question.
// An empty document emits no document framing at all.
func Build(grade int, document, question string) string {
	if HasDocument(document) {
		return fmt.Sprintf(documentTemplate, grade, document, question)
	}
	return fmt.Sprintf(questionTemplate, grade, question)
}

// HasDocument reports whether document is non-empty.
func HasDocument(document string) bool {
	return document != ""
}
