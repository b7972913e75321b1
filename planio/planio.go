// Package planio stream codec for instances and plan results.
package planio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/portway/citynet"
	"github.com/katalvlaran/portway/kruskal_boruvka"
)

// ErrSyntax indicates a malformed instance stream: a missing token or a
// token that is not an integer. Branch with errors.Is; the wrapped message
// names the field being read when the stream broke.
var ErrSyntax = errors.New("planio: malformed instance stream")

// ReadInstance parses an instance from r in the canonical order —
// n_cities, then n_ports + pairs, then n_highways + triples — and hands
// the parsed data to citynet.NewInstance for semantic validation under
// opts.
//
// Steps:
//  1. Read n_cities and check it against opts.MaxCities before sizing
//     anything to it.
//  2. Read n_ports and the (city_id, port_cost) pairs.
//  3. Read n_highways, check it against opts.MaxHighways, then read the
//     (city_a, city_b, cost) triples.
//  4. Delegate to citynet.NewInstance; its sentinels pass through
//     unchanged.
//
// Error Conditions:
//   - ErrSyntax            : missing or non-integer token.
//   - citynet.ErrTooLarge  : a declared count exceeds its ceiling.
//   - any citynet sentinel : semantic validation failed.
//
// Complexity: O(n + h) time and space.
func ReadInstance(r io.Reader, opts citynet.Options) (*citynet.Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	// 1. City count, bounded before any allocation.
	numCities, err := nextInt(sc, "n_cities")
	if err != nil {
		return nil, err
	}
	if numCities < 0 {
		return nil, fmt.Errorf("%w: got %d", citynet.ErrNegativeCities, numCities)
	}
	if opts.MaxCities > 0 && numCities > opts.MaxCities {
		return nil, fmt.Errorf("%w: %d cities > max %d", citynet.ErrTooLarge, numCities, opts.MaxCities)
	}

	// 2. Port declarations. n_ports is bounded by the city count: every
	//    valid declaration names a distinct city.
	numPorts, err := nextInt(sc, "n_ports")
	if err != nil {
		return nil, err
	}
	if numPorts < 0 || numPorts > numCities {
		return nil, fmt.Errorf("%w: %d ports for %d cities", citynet.ErrTooLarge, numPorts, numCities)
	}
	ports := make([]citynet.Port, 0, numPorts)
	for i := 0; i < numPorts; i++ {
		city, err := nextInt(sc, "port city_id")
		if err != nil {
			return nil, err
		}
		cost, err := nextInt64(sc, "port_cost")
		if err != nil {
			return nil, err
		}
		ports = append(ports, citynet.Port{City: city, Cost: cost})
	}

	// 3. Candidate highways, bounded before sizing the slice.
	numHighways, err := nextInt(sc, "n_highways")
	if err != nil {
		return nil, err
	}
	if numHighways < 0 {
		return nil, fmt.Errorf("%w: negative n_highways %d", ErrSyntax, numHighways)
	}
	if opts.MaxHighways > 0 && numHighways > opts.MaxHighways {
		return nil, fmt.Errorf("%w: %d highways > max %d", citynet.ErrTooLarge, numHighways, opts.MaxHighways)
	}
	highways := make([]citynet.Highway, 0, numHighways)
	for i := 0; i < numHighways; i++ {
		a, err := nextInt(sc, "highway city_a")
		if err != nil {
			return nil, err
		}
		b, err := nextInt(sc, "highway city_b")
		if err != nil {
			return nil, err
		}
		cost, err := nextInt64(sc, "highway cost")
		if err != nil {
			return nil, err
		}
		highways = append(highways, citynet.Highway{A: a, B: b, Cost: cost})
	}

	// 4. Semantic validation happens in exactly one place.
	return citynet.NewInstance(numCities, ports, highways, opts)
}

// WriteResult emits the canonical plan output: "Impossible" for an
// infeasible result, otherwise the total cost line followed by the
// "ports_count highways_used" line.
func WriteResult(w io.Writer, res kruskal_boruvka.Result) error {
	_, err := fmt.Fprintln(w, res.String())

	return err
}

// nextInt64 reads the next whitespace-separated token as an int64,
// reporting ErrSyntax with the field name on a missing or malformed token.
func nextInt64(sc *bufio.Scanner, field string) (int64, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("%w: reading %s: %v", ErrSyntax, field, err)
		}

		return 0, fmt.Errorf("%w: unexpected end of input reading %s", ErrSyntax, field)
	}

	tok := sc.Text()
	val, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not an integer: %q", ErrSyntax, field, tok)
	}

	return val, nil
}

// nextInt reads the next token as an int.
func nextInt(sc *bufio.Scanner, field string) (int, error) {
	v, err := nextInt64(sc, field)

	return int(v), err
}
