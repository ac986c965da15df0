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
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

/*

RESTful wrappers over puzzles.  These handlers do the request
decoding and response encoding for a web service built over this
package; they know nothing about sessions or storage, which are
the server's business.

*/

// NewHandler is a POST handler that reads a JSON-encoded Summary
// from the request body and calls New on it.  The new puzzle's
// propagation State is sent as a 200 response, and the puzzle
// itself is returned to the golang caller.  Malformed bodies and
// model violations are sent as 400 responses carrying the Error
// value, and returned to the caller.
func NewHandler(w http.ResponseWriter, r *http.Request) (*Puzzle, error) {
	dec := json.NewDecoder(r.Body)
	var summary Summary
	if e := dec.Decode(&summary); e != nil {
		return nil, writeError(requestError(DecodeAttribute, e), w, r)
	}
	p, e := New(&summary)
	if e != nil {
		return nil, writeFailure(e, w, r)
	}
	return p, p.StateHandler(w, r)
}

// ReadHandler is a POST handler that reads a textual puzzle
// definition from the request body and builds the puzzle it
// describes.  Responses are as for NewHandler.
func ReadHandler(w http.ResponseWriter, r *http.Request) (*Puzzle, error) {
	body, e := io.ReadAll(r.Body)
	if e != nil {
		return nil, writeError(requestError(DecodeAttribute, e), w, r)
	}
	summary, e := ReadString(string(body))
	if e != nil {
		return nil, writeFailure(e, w, r)
	}
	p, e := New(summary)
	if e != nil {
		return nil, writeFailure(e, w, r)
	}
	return p, p.StateHandler(w, r)
}

// SummaryHandler responds with the puzzle's Summary.
func (p *Puzzle) SummaryHandler(w http.ResponseWriter, r *http.Request) error {
	return writeJSON(p.Summary(), http.StatusOK, w, r)
}

// StateHandler responds with the puzzle's propagation State:
// the per-cell candidates that constraint propagation alone can
// deduce.
func (p *Puzzle) StateHandler(w http.ResponseWriter, r *http.Request) error {
	return writeJSON(p.State(), http.StatusOK, w, r)
}

// SolveHandler solves the puzzle and responds with the Result.
// An unsolvable puzzle is a 200 response with Solved false, not
// an error.
func (p *Puzzle) SolveHandler(w http.ResponseWriter, r *http.Request) error {
	return writeJSON(p.Solve(), http.StatusOK, w, r)
}

// SolveDefinitionHandler builds a puzzle from a textual
// definition and solves it, responding with the Result.  The
// Result is also returned to the golang caller, who may have
// decoded the definition out of a larger request.  Failure
// responses are as for NewHandler.
func SolveDefinitionHandler(definition string, w http.ResponseWriter, r *http.Request) (*Result, error) {
	summary, e := ReadString(definition)
	if e != nil {
		return nil, writeFailure(e, w, r)
	}
	p, e := New(summary)
	if e != nil {
		return nil, writeFailure(e, w, r)
	}
	result := p.Solve()
	return &result, writeJSON(result, http.StatusOK, w, r)
}

/*

response helpers

*/

// requestError wraps a transport-level problem as an Error.
func requestError(attr ErrorAttribute, e error) Error {
	return Error{
		Scope:     RequestScope,
		Structure: AttributeStructure,
		Attribute: attr,
		Condition: GeneralCondition,
		Values:    ErrorData{e.Error()},
	}
}

// writeFailure sends a puzzle-building failure to the client as
// a 400 response carrying the Error value, and returns it.
func writeFailure(e error, w http.ResponseWriter, r *http.Request) error {
	err, ok := e.(Error)
	if !ok {
		err = Error{
			Scope:     InternalScope,
			Structure: ScopeStructure,
			Condition: GeneralCondition,
			Values:    ErrorData{e.Error()},
		}
	}
	err.Message = err.Error() // verbalize for the client
	if we := writeJSON(err, http.StatusBadRequest, w, r); we != nil {
		return we
	}
	return err
}

// writeError sends an Error with a 400 status and returns it
// (or the encoding error, if the response could not be sent).
func writeError(err Error, w http.ResponseWriter, r *http.Request) error {
	err.Message = err.Error()
	if we := writeJSON(err, http.StatusBadRequest, w, r); we != nil {
		return we
	}
	return err
}

// writeJSON encodes an object as the response body.  Encoding
// failures should never happen, so they get a 500 response and
// an InternalScope Error to the golang caller.
func writeJSON(obj interface{}, status int, w http.ResponseWriter, r *http.Request) error {
	bytes, e := json.Marshal(obj)
	if e != nil {
		http.Error(w, fmt.Sprintf("JSON encoding error: %v", e), http.StatusInternalServerError)
		return Error{
			Scope:     InternalScope,
			Structure: AttributeStructure,
			Attribute: EncodeAttribute,
			Condition: GeneralCondition,
			Values:    ErrorData{e.Error()},
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
	return nil
}
