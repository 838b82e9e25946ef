package ppssp

import "errors"

var (
	// ErrCovarianceMatrix indicates the duration/cost covariance matrix is not positive definite.
	ErrCovarianceMatrix = errors.New("ppssp: covariance matrix is not positive definite")
	// ErrNonPositiveDuration indicates the log-normal sampler produced a duration below 1.
	ErrNonPositiveDuration = errors.New("ppssp: sampled a non-positive project duration")
	// ErrPoolExhausted indicates a constraint pass asked for more projects than remain unassigned.
	ErrPoolExhausted = errors.New("ppssp: not enough unassigned projects for constraint group")
	// ErrSynergyAttempts indicates no exclusion-consistent synergy group was found within the retry cap.
	ErrSynergyAttempts = errors.New("ppssp: infeasible synergy group after max attempts")
	// ErrSynergyValueRange indicates a synergy group's total value is too small to draw a bonus from.
	ErrSynergyValueRange = errors.New("ppssp: synergy group value range is degenerate")
	// ErrWeightMismatch indicates candidates and weights differ in length or are empty.
	ErrWeightMismatch = errors.New("ppssp: candidates and weights must be non-empty and equal in length")
	// ErrZeroWeight indicates all selection weights are zero.
	ErrZeroWeight = errors.New("ppssp: total selection weight is zero")
)
