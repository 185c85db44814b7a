// Package codemodel defines the in-memory command model handed between
// generator stages, and its YAML representation.
//
// # Model file
//
//	info:
//	  name: WidgetClient
//	  nounPrefix: Az
//	  namespace: Sample.Widgets
//	commands:
//	  widgets_get:
//	    verb: Get
//	    noun: Widget
//	  widgets_list:
//	    verb: Get
//	    noun: Widget
//	    hideDirective: "^Get-"   # set once a hide-command directive matched
//	schemas:
//	  Tags:
//	    type: dictionary
//	    additionalProperties:
//	      type: string
//	  PropertyBag:
//	    type: dictionary         # no additionalProperties: untyped values
//
// Command display names are synthesized as Verb-<NounPrefix><Noun>, so the
// first command above is known to directives as "Get-AzWidget".
package codemodel
