// Package providers contains concrete chat backend adapters.
//
// Each sub-package implements [github.com/aislehq/aisle/pkg/modeladapter.Completer]
// for one backend API. Only the Ollama-style chat API is supported today;
// adapters for other wire formats slot in beside it.
package providers
