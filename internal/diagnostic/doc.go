// Package diagnostic accumulates structured errors and warnings raised by
// generator stages.
//
// The pipeline host consults the accumulated diagnostics after every stage
// (the checkpoint): a single error aborts the whole generation run, while
// warnings and infos are only reported.
package diagnostic
