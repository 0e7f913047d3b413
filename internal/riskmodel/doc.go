// Package riskmodel turns the cleaned order population into a trained binary
// classifier that scores return probability per record.
//
// Training fits a class-weighted, L2-regularized logistic regression on a
// stratified train/test split of the encoded and standardized features. The
// categorical encoding and the standardization statistics are frozen at
// training time and threaded explicitly into scoring, so scoring an arbitrary
// record population is deterministic with respect to the trained artifacts.
package riskmodel
