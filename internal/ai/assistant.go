// Package ai defines the optional second-opinion layer: a model reviews the
// local analysis and returns its own fit verdict plus advice for the
// candidate. The analysis result never depends on it.
package ai

import "context"

// FitAssessment is the model's verdict on a CV/posting pair.
type FitAssessment struct {
	Fit    bool
	Score  float64
	Reason string
	Advice string
	Raw    string
}

// Request carries everything the advisor sees: both texts and the local
// engine's findings serialized as JSON.
type Request struct {
	Offer    string
	CV       string
	Findings string
}

// Advisor produces a fit assessment for a request.
type Advisor interface {
	Assess(ctx context.Context, req *Request) (*FitAssessment, error)
}
