// Package models provides functionality for listing and categorizing
// available OpenAI models. It helps users discover which chat models
// can be used for requirements translation with their API key.
package models
