// kenat.go - a web-based KenKen solver and puzzle library.
// Copyright (C) 2026 the kenat.go authors.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.

package puzzle

import (
	"fmt"
)

/*

Errors

*/

// An Error describes a problem with a puzzle description or a
// requested operation.  It tells the caller "this thing failed
// to meet this condition" and provides supplemental details
// about the thing and the condition, so clients can produce
// their own messages; Error can also verbalize itself in
// English.
//
// Note that an unsolvable puzzle is not an Error: it is a normal
// solver outcome reported in the Result.  Errors arise only from
// malformed descriptions and misuse of the API.
type Error struct {
	Scope     ErrorScope     `json:"scope"`
	Structure ErrorStructure `json:"structure,omitempty"`
	Condition ErrorCondition `json:"condition,omitempty"`
	Attribute ErrorAttribute `json:"attribute,omitempty"`
	Values    ErrorData      `json:"values,omitempty"`
	Message   string         `json:"message,omitempty"` // custom message
}

// An ErrorScope explains what type of thing the error is
// referring to: a caller-supplied argument, the puzzle format, a
// cage, a cell, or internal logic.
type ErrorScope int

// Constants for the various error scopes.
const (
	UnknownScope ErrorScope = iota
	RequestScope
	ArgumentScope
	FormatScope
	CageScope
	CellScope
	InternalScope
	MaxScope
)

// The ErrorStructure denotes whether the problem is in the
// overall Scope, an Attribute of the Scope, or the value of an
// Attribute of the Scope.
type ErrorStructure int

// Constants for the various structure codes.
const (
	UnknownStructure ErrorStructure = iota
	ScopeStructure
	AttributeStructure
	AttributeValueStructure
	MaxStructure
)

// The ErrorCondition is the predicate that the
// scope/attribute/value failed to satisfy.
type ErrorCondition int

// Constants for the various error conditions
const (
	UnknownCondition ErrorCondition = iota
	GeneralCondition
	TooLargeCondition
	TooSmallCondition
	EmptyArgumentCondition
	UnknownOperationCondition
	CellOutOfRangeCondition
	OverlappingCagesCondition
	NoCageCellsCondition
	UncagedCellCondition
	WrongCellCountCondition
	TargetOutOfRangeCondition
	UnequalLineLengthCondition
	UndefinedCageCondition
	MissingTargetCondition
	InvalidArgumentCondition
	MaxCondition
)

// An ErrorAttribute names the attribute that has a problem.
type ErrorAttribute int

// Constants for the various attribute codes.
const (
	UnknownAttribute ErrorAttribute = iota
	DecodeAttribute
	EncodeAttribute
	URLAttribute
	SizeAttribute
	IndexAttribute
	ValueAttribute
	OperationAttribute
	TargetAttribute
	CellsAttribute
	LineAttribute
	DefinitionAttribute
	MaxAttribute
)

// The ErrorData provides details about the thing that failed to
// meet the predicate (such as the value of an attribute) as well
// as the predicate itself (such as the limit that was exceeded).
//
// Every item in the slice of ErrorData is required to be
// JSON-serializable, so it can be returned to web clients.
type ErrorData []interface{}

// Return an error string from an Error.  If the Error has a
// pre-canned message, this will use it, otherwise it will
// produce an appropriate (English, non-localized) message.
func (e Error) Error() string {
	es := e.Message
	if len(es) > 0 {
		return es
	}
	values := e.Values
	nextVal := func() interface{} {
		if len(values) == 0 {
			return "<unknown>"
		}
		val := values[0]
		values = values[1:]
		return val
	}
	switch e.Scope {
	case RequestScope:
		es = "Invalid request: "
	case ArgumentScope:
		es = "Invalid argument: "
	case FormatScope:
		es = "Invalid puzzle definition: "
	case CageScope:
		es = fmt.Sprintf("Problem in cage %v: ", nextVal())
	case CellScope:
		es = fmt.Sprintf("Problem in cell %v: ", nextVal())
	case InternalScope:
		es = "Internal logic error: "
	default:
		es = "Unknown error: "
	}
	if e.Structure == AttributeStructure || e.Structure == AttributeValueStructure {
		switch e.Attribute {
		case DecodeAttribute:
			es += "JSON Decode error"
		case EncodeAttribute:
			es += "JSON Encode error"
		case URLAttribute:
			es += "Resource path"
		case SizeAttribute:
			es += "Size"
		case IndexAttribute:
			es += "Index"
		case ValueAttribute:
			es += "Value"
		case OperationAttribute:
			es += "Operation"
		case TargetAttribute:
			es += "Target"
		case CellsAttribute:
			es += "Cells"
		case LineAttribute:
			es += "Line"
		case DefinitionAttribute:
			es += "Definition"
		default:
			es += "<Unknown attribute>"
		}
		if e.Structure == AttributeValueStructure {
			es += " (" + fmt.Sprint(nextVal()) + ")"
		}
		es += ": "
	}
	switch e.Condition {
	case GeneralCondition:
		es += fmt.Sprint(nextVal())
	case TooLargeCondition:
		es += fmt.Sprintf("Must be at most %v", nextVal())
	case TooSmallCondition:
		es += fmt.Sprintf("Must be at least %v", nextVal())
	case EmptyArgumentCondition:
		es += "Required argument is missing or empty"
	case UnknownOperationCondition:
		es += "Not a known operation"
	case CellOutOfRangeCondition:
		es += "Cell index is outside the grid"
	case OverlappingCagesCondition:
		es += "Cell already belongs to another cage"
	case NoCageCellsCondition:
		es += "Cage has no cells"
	case UncagedCellCondition:
		es += "Cell belongs to no cage"
	case WrongCellCountCondition:
		es += "Wrong number of cells for the operation"
	case TargetOutOfRangeCondition:
		es += "Target is out of range for the grid"
	case UnequalLineLengthCondition:
		es += fmt.Sprintf("Expected line length %v", nextVal())
	case UndefinedCageCondition:
		es += fmt.Sprintf("No cage is named %v", nextVal())
	case MissingTargetCondition:
		es += "Cage has no target definition"
	case InvalidArgumentCondition:
		es += "Required value was missing or invalid"
	default:
		es += fmt.Sprintf("Supplemental data is %v", values)
	}
	return es
}

// rangeError returns an Error that describes an out-of-range
// argument.
func rangeError(attr ErrorAttribute, val int, min int, max int) Error {
	err := Error{
		Scope:     ArgumentScope,
		Structure: AttributeValueStructure,
		Attribute: attr,
		Condition: TooLargeCondition,
		Values:    ErrorData{val, max},
	}
	if val < min {
		err.Condition = TooSmallCondition
		err.Values[1] = min
	}
	return err
}

// cageError returns an Error about one attribute of one cage.
func cageError(cageIdx int, attr ErrorAttribute, val interface{}, cond ErrorCondition) Error {
	return Error{
		Scope:     CageScope,
		Structure: AttributeValueStructure,
		Attribute: attr,
		Condition: cond,
		Values:    ErrorData{cageIdx, val},
	}
}

// formatError returns an Error about the textual puzzle format.
func formatError(attr ErrorAttribute, cond ErrorCondition, values ...interface{}) Error {
	return Error{
		Scope:     FormatScope,
		Structure: AttributeValueStructure,
		Attribute: attr,
		Condition: cond,
		Values:    ErrorData(values),
	}
}
