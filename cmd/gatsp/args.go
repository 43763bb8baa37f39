package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gatsp/tsp"
)

var errBadCoordinate = errors.New("coordinate must be an \"x,y\" pair of integers")

// parseNodes converts "x,y" tokens into nodes tagged tsp.DefaultTag.
// Surrounding parentheses and spaces are tolerated: "(3, 4)" is accepted.
func parseNodes(tokens []string) ([]tsp.Node, error) {
	nodes := make([]tsp.Node, 0, len(tokens))
	for i, tok := range tokens {
		n, err := parseNode(tok)
		if err != nil {
			return nil, fmt.Errorf("argument %d %q: %w", i+1, tok, err)
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func parseNode(tok string) (tsp.Node, error) {
	s := strings.TrimSpace(tok)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")

	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return tsp.Node{}, errBadCoordinate
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return tsp.Node{}, errBadCoordinate
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return tsp.Node{}, errBadCoordinate
	}
	return tsp.NewNode(x, y, tsp.DefaultTag), nil
}

// demoNodes is the 30-hole layout on a 5'x10' (1524mm x 3048mm) sheet used
// when no coordinates are given.
func demoNodes() []tsp.Node {
	coords := [][2]int{
		{604, 2009}, {180, 3004}, {800, 1080}, {140, 180}, {20, 160},
		{1000, 1160}, {1200, 2160}, {1140, 140}, {40, 120}, {1000, 2125},
		{180, 2890}, {60, 80}, {120, 80}, {120, 600}, {290, 400},
		{100, 40}, {200, 2440}, {20, 20}, {60, 20}, {1200, 2090},
		{1250, 2455}, {20, 280}, {3, 2090}, {300, 1240}, {200, 86},
		{202, 1780}, {130, 1202}, {60, 60}, {1234, 2345}, {1, 1},
	}
	nodes := make([]tsp.Node, len(coords))
	for i, c := range coords {
		nodes[i] = tsp.NewNode(c[0], c[1], tsp.DefaultTag)
	}
	return nodes
}
