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

// Web service over the KenKen solver and the puzzle library.
//
// The API is JSON over three endpoints:
//
//	GET  /api/puzzles       list the library entries
//	GET  /api/puzzle/<id>   one entry with its parsed summary
//	POST /api/solve         solve a library puzzle or an inline
//	                        definition: {"puzzleId": "sample-3"}
//	                        or {"definition": "..."}
//
// Library results are cached in storage, so repeat solves of the
// same library puzzle are free.  Inline definitions are solved
// on the spot and never stored.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/kendoku/kenat.go/puzzle"
	"github.com/kendoku/kenat.go/storage"
)

func main() {
	cacheId, databaseId, err := storage.Connect()
	if err != nil {
		log.Fatalf("Couldn't connect to storage: %v", err)
	}
	log.Printf("Connected to cache at %q.", cacheId)
	log.Printf("Connected to database at %q.", databaseId)
	shutdownOnSignal()

	http.HandleFunc("/api/", apiHandler)

	// Heroku-style environment port sensing
	port := os.Getenv("PORT")
	if port == "" {
		// running locally in dev mode
		port = "localhost:8080"
	} else {
		// running as a true server
		port = ":" + port
	}
	log.Printf("Listening on %s...", port)
	err = http.ListenAndServe(port, nil)
	storage.Close()
	log.Fatal("Listener failure: ", err)
}

// shutdownOnSignal: close storage and exit when told to stop.
func shutdownOnSignal() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		s := <-c
		storage.Close()
		log.Fatalf("Exiting: caught signal %v.", s)
	}()
}

/*

API handlers

*/

func apiHandler(w http.ResponseWriter, r *http.Request) {
	log.Printf("Handling %s %s...", r.Method, r.URL.Path)
	defer errorHandler(w, r)
	path := strings.TrimPrefix(r.URL.Path, "/api/")
	switch {
	case path == "puzzles" && r.Method == "GET":
		listHandler(w, r)
	case strings.HasPrefix(path, "puzzle/") && r.Method == "GET":
		entryHandler(w, r, path[len("puzzle/"):])
	case path == "solve" && r.Method == "POST":
		solveHandler(w, r)
	default:
		http.NotFound(w, r)
	}
}

// errorHandler turns storage panics into 500 responses, so a
// flaky store doesn't take the listener down.
func errorHandler(w http.ResponseWriter, r *http.Request) {
	if err := recover(); err != nil {
		log.Printf("Storage failure handling %s %s: %v", r.Method, r.URL.Path, err)
		http.Error(w, fmt.Sprintf("Storage failure: %v", err),
			http.StatusInternalServerError)
	}
}

// an entryInfo lists one library puzzle
type entryInfo struct {
	PuzzleId string `json:"puzzleId"`
	Size     int    `json:"size"`
}

func listHandler(w http.ResponseWriter, r *http.Request) {
	entries := storage.ListEntries()
	infos := make([]entryInfo, len(entries))
	for i, pe := range entries {
		infos[i] = entryInfo{PuzzleId: pe.PuzzleId, Size: int(pe.Size)}
	}
	writeJSON(w, http.StatusOK, infos)
	log.Printf("Returned %d library entries.", len(infos))
}

func entryHandler(w http.ResponseWriter, r *http.Request, id string) {
	pe := storage.LoadEntry(id)
	if pe == nil {
		http.NotFound(w, r)
		return
	}
	response := struct {
		PuzzleId   string          `json:"puzzleId"`
		Definition string          `json:"definition"`
		Summary    *puzzle.Summary `json:"summary"`
	}{pe.PuzzleId, pe.Definition, pe.MakePuzzle().Summary()}
	writeJSON(w, http.StatusOK, response)
	log.Printf("Returned library entry %q.", id)
}

// a solveRequest names a library puzzle or carries a definition
type solveRequest struct {
	PuzzleId   string `json:"puzzleId,omitempty"`
	Definition string `json:"definition,omitempty"`
}

func solveHandler(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Couldn't decode solve request: %v", err),
			http.StatusBadRequest)
		return
	}
	switch {
	case req.PuzzleId != "" && req.Definition != "":
		http.Error(w, "Give a puzzleId or a definition, not both",
			http.StatusBadRequest)
	case req.PuzzleId != "":
		solveLibrary(w, r, req.PuzzleId)
	case req.Definition != "":
		solveInline(w, r, req.Definition)
	default:
		http.Error(w, "Nothing to solve", http.StatusBadRequest)
	}
}

// solveLibrary solves a library puzzle, serving and keeping a
// cached result when there is one.
func solveLibrary(w http.ResponseWriter, r *http.Request, id string) {
	pe := storage.LoadEntry(id)
	if pe == nil {
		http.NotFound(w, r)
		return
	}
	if result := storage.LoadResult(id); result != nil {
		writeJSON(w, http.StatusOK, result)
		log.Printf("Returned cached result for %q.", id)
		return
	}
	result := pe.MakePuzzle().Solve()
	storage.SaveResult(id, &result)
	writeJSON(w, http.StatusOK, &result)
	log.Printf("Solved %q in %d steps.", id, result.Steps)
}

// solveInline solves a posted definition without touching
// storage; the puzzle package does the solving and the response
// writing.
func solveInline(w http.ResponseWriter, r *http.Request, definition string) {
	result, err := puzzle.SolveDefinitionHandler(definition, w, r)
	if err != nil {
		log.Printf("Rejected inline definition: %v", err)
		return
	}
	log.Printf("Solved inline definition in %d steps.", result.Steps)
}

func writeJSON(w http.ResponseWriter, status int, obj interface{}) {
	bytes, err := json.Marshal(obj)
	if err != nil {
		http.Error(w, fmt.Sprintf("JSON encoding error: %v", err),
			http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}
