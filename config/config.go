// Package config implements the command-line grammar parsers of spec.md
// §6: ParseSize (size parameter specifications), ParseWeights (the weight
// family grammar), and ReadDirectionNumbers (Joe-Kuo-style direction-number
// tables for a user-supplied Sobol net, overriding the embedded table).
package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"latbuilder-go/gf2poly"
	"latbuilder-go/net"
	"latbuilder-go/projection"
	"latbuilder-go/sizeparam"
	"latbuilder-go/weights"
)

// ParseSize parses a size-parameter specification:
//
//	"1021"        integer size
//	"2^10"        integer size, power-of-two shorthand
//	"2^10:4"      embedded integer size, base 2, max level 4
//	"mod:19"      polynomial size, modulus given as its integer bit pattern
//	"mod:19:4"    embedded polynomial size, max level 4
func ParseSize(spec string) (sizeparam.Param, error) {
	parts := strings.Split(spec, ":")
	if len(parts) > 0 && parts[0] == "mod" {
		if len(parts) < 2 {
			return sizeparam.Param{}, fmt.Errorf("config: BadSize: %q missing modulus", spec)
		}
		modInt, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			return sizeparam.Param{}, fmt.Errorf("config: BadSize: invalid modulus %q: %w", parts[1], err)
		}
		mod := gf2poly.Poly(modInt)
		if len(parts) == 3 {
			maxLevel, err := strconv.Atoi(parts[2])
			if err != nil {
				return sizeparam.Param{}, fmt.Errorf("config: BadSize: invalid max level %q: %w", parts[2], err)
			}
			return sizeparam.NewEmbeddedPolynomial(mod, maxLevel)
		}
		return sizeparam.NewPolynomial(mod)
	}

	numPart := parts[0]
	var n uint64
	if strings.Contains(numPart, "^") {
		baseExp := strings.SplitN(numPart, "^", 2)
		base, err := strconv.ParseUint(baseExp[0], 10, 64)
		if err != nil {
			return sizeparam.Param{}, fmt.Errorf("config: BadSize: invalid base %q: %w", baseExp[0], err)
		}
		exp, err := strconv.Atoi(baseExp[1])
		if err != nil {
			return sizeparam.Param{}, fmt.Errorf("config: BadSize: invalid exponent %q: %w", baseExp[1], err)
		}
		n = 1
		for i := 0; i < exp; i++ {
			n *= base
		}
		if len(parts) == 2 {
			maxLevel, err := strconv.Atoi(parts[1])
			if err != nil {
				return sizeparam.Param{}, fmt.Errorf("config: BadSize: invalid max level %q: %w", parts[1], err)
			}
			return sizeparam.NewEmbeddedInteger(base, maxLevel)
		}
		return sizeparam.NewInteger(n)
	}

	var err error
	n, err = strconv.ParseUint(numPart, 10, 64)
	if err != nil {
		return sizeparam.Param{}, fmt.Errorf("config: BadSize: invalid size %q: %w", numPart, err)
	}
	return sizeparam.NewInteger(n)
}

// ParseWeights parses a weight specification of the form
// "kind:arg1:arg2:...". Supported kinds: product, order-dependent, POD
// (order-dependent args then product args separated by "/"),
// projection-dependent (default then "{coords}=weight" entries),
// interlaced-POD (wraps a POD spec), and combined (semicolon-separated list
// of specs, summed).
func ParseWeights(spec string) (weights.Weights, error) {
	if strings.HasPrefix(spec, "combined:") {
		rest := strings.TrimPrefix(spec, "combined:")
		var list []weights.Weights
		for _, part := range strings.Split(rest, ";") {
			w, err := ParseWeights(part)
			if err != nil {
				return nil, err
			}
			list = append(list, w)
		}
		return &weights.Combined{List: list}, nil
	}
	if strings.HasPrefix(spec, "interlaced-POD:") {
		inner, err := ParseWeights(strings.TrimPrefix(spec, "interlaced-POD:"))
		if err != nil {
			return nil, err
		}
		pod, ok := inner.(*weights.POD)
		if !ok {
			return nil, fmt.Errorf("config: BadWeights: interlaced-POD requires a POD argument, got %T", inner)
		}
		return &weights.InterlacedPOD{Base: *pod}, nil
	}
	if strings.HasPrefix(spec, "product:") {
		return parseProduct(strings.TrimPrefix(spec, "product:"))
	}
	if strings.HasPrefix(spec, "order-dependent:") {
		return parseOrderDependent(strings.TrimPrefix(spec, "order-dependent:"))
	}
	if strings.HasPrefix(spec, "POD:") {
		rest := strings.TrimPrefix(spec, "POD:")
		halves := strings.SplitN(rest, "/", 2)
		if len(halves) != 2 {
			return nil, fmt.Errorf("config: BadWeights: POD spec %q must be \"order-args/product-args\"", spec)
		}
		od, err := parseOrderDependent(halves[0])
		if err != nil {
			return nil, err
		}
		pr, err := parseProduct(halves[1])
		if err != nil {
			return nil, err
		}
		return &weights.POD{OD: *od, Prod: *pr}, nil
	}
	if strings.HasPrefix(spec, "projection-dependent:") {
		return parseProjectionDependent(strings.TrimPrefix(spec, "projection-dependent:"))
	}
	return nil, fmt.Errorf("config: BadWeights: unrecognised weight kind in %q", spec)
}

func parseProduct(arg string) (*weights.Product, error) {
	fields := strings.Split(arg, ",")
	if len(fields) == 0 || fields[0] == "" {
		return nil, fmt.Errorf("config: BadWeights: empty product weight spec")
	}
	def, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return nil, fmt.Errorf("config: BadWeights: invalid default %q: %w", fields[0], err)
	}
	coord := make([]float64, 0, len(fields)-1)
	for _, f := range fields[1:] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("config: BadWeights: invalid coordinate weight %q: %w", f, err)
		}
		coord = append(coord, v)
	}
	return &weights.Product{Default: def, Coord: coord}, nil
}

func parseOrderDependent(arg string) (*weights.OrderDependent, error) {
	fields := strings.Split(arg, ",")
	if len(fields) == 0 || fields[0] == "" {
		return nil, fmt.Errorf("config: BadWeights: empty order-dependent weight spec")
	}
	def, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return nil, fmt.Errorf("config: BadWeights: invalid default %q: %w", fields[0], err)
	}
	byOrder := make([]float64, 0, len(fields)-1)
	for _, f := range fields[1:] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("config: BadWeights: invalid order weight %q: %w", f, err)
		}
		byOrder = append(byOrder, v)
	}
	return &weights.OrderDependent{Default: def, ByOrder: byOrder}, nil
}

func parseProjectionDependent(arg string) (*weights.ProjectionDependent, error) {
	fields := strings.Split(arg, ":")
	if len(fields) == 0 {
		return nil, fmt.Errorf("config: BadWeights: empty projection-dependent weight spec")
	}
	def, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return nil, fmt.Errorf("config: BadWeights: invalid default %q: %w", fields[0], err)
	}
	pd := weights.NewProjectionDependent(def)
	for _, f := range fields[1:] {
		eq := strings.SplitN(f, "=", 2)
		if len(eq) != 2 {
			return nil, fmt.Errorf("config: BadWeights: expected \"{coords}=weight\", got %q", f)
		}
		coordsStr := strings.Trim(eq[0], "{}")
		u, err := projection.Parse(coordsStr)
		if err != nil {
			return nil, fmt.Errorf("config: BadWeights: %w", err)
		}
		w, err := strconv.ParseFloat(eq[1], 64)
		if err != nil {
			return nil, fmt.Errorf("config: BadWeights: invalid weight %q: %w", eq[1], err)
		}
		pd.Set(u, w)
	}
	return pd, nil
}

// ReadDirectionNumbers parses a Joe-Kuo-style direction-number table: one
// header line followed by rows "d s a m_i m_i+1 ... m_d" (whitespace
// separated), returning one net.SobolEntry per row, letting a user override
// or extend the embedded table (spec.md §6).
func ReadDirectionNumbers(r io.Reader) ([]net.SobolEntry, error) {
	scanner := bufio.NewScanner(r)
	var out []net.SobolEntry
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || lineNo == 1 {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("config: BadDirectionNumbers: line %d: expected at least 3 fields, got %d", lineNo, len(fields))
		}
		d, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("config: BadDirectionNumbers: line %d: invalid dimension: %w", lineNo, err)
		}
		s, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("config: BadDirectionNumbers: line %d: invalid degree: %w", lineNo, err)
		}
		a, err := strconv.ParseUint(fields[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("config: BadDirectionNumbers: line %d: invalid a: %w", lineNo, err)
		}
		if len(fields) < 3+s {
			return nil, fmt.Errorf("config: BadDirectionNumbers: line %d: expected %d direction numbers, got %d", lineNo, s, len(fields)-3)
		}
		m := make([]uint64, s)
		for i := 0; i < s; i++ {
			v, err := strconv.ParseUint(fields[3+i], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("config: BadDirectionNumbers: line %d: invalid m_%d: %w", lineNo, i+1, err)
			}
			m[i] = v
		}
		// a encodes the middle coefficients a_1..a_{s-1} as bits of an
		// (s-1)-bit integer (the classical Joe-Kuo "a" column); fold it into
		// the full polynomial bit pattern bit-for-bit with the leading and
		// constant terms.
		poly := (uint64(1) << uint(s)) | 1
		poly |= a << 1
		_ = d
		out = append(out, net.SobolEntry{Degree: s, Poly: poly, M: m})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: BadDirectionNumbers: %w", err)
	}
	return out, nil
}
