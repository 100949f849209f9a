// Package utils provides general-purpose helpers shared across the farmer:
// the resty HTTP client constructor, initData identity decoding, session
// token inspection, pass identifiers and duration formatting.
package utils
