// Command latbuilder constructs a rank-1 lattice rule or digital net under
// a chosen figure of merit, following the flag-based CLI conventions of
// this module's other commands (spec.md §6).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"latbuilder-go/config"
	"latbuilder-go/coorduniform"
	"latbuilder-go/innerproduct"
	"latbuilder-go/kernel"
	"latbuilder-go/lattice"
	"latbuilder-go/prof"
	"latbuilder-go/report"
	"latbuilder-go/search"
	"latbuilder-go/sizeparam"
	"latbuilder-go/storage"
	"latbuilder-go/weights"
)

const (
	defaultConstruction = "ordinary"
	defaultExplore      = "full"
	defaultSampleSize   = 32
	defaultSeed         = 1
)

func main() {
	sizeSpec := flag.String("size", "2^10", "size parameter: N, 2^k, 2^k:L (embedded), mod:P, or mod:P:L")
	dimension := flag.Int("dimension", 4, "number of coordinates to construct")
	figure := flag.String("figure", "P2", "kernel figure for lattices (P2, P4, R, P2-PLR, R-PLR, IA2, IB, IC2) or digital-net figure (T, TPROJ)")
	weightSpec := flag.String("weights", "product:0.1", "weight specification (see config.ParseWeights)")
	construction := flag.String("construction", defaultConstruction, "ordinary (lattice) or digital-net")
	explore := flag.String("explore", defaultExplore, "full, random, or mixed")
	sampleSize := flag.Int("sample", defaultSampleSize, "candidate sample size for random/mixed exploration")
	mixedThreshold := flag.Int("mixed-threshold", 2, "dimension threshold up to and including which mixed exploration is exhaustive")
	maxOrder := flag.Int("max-order", 3, "max tracked projection cardinality for the digital-net TPROJ figure")
	seed := flag.Uint64("seed", defaultSeed, "seed for random/mixed exploration's pseudorandom stream")
	jsonlPath := flag.String("jsonl", "", "optional JSONL path recording every accepted coordinate")
	compression := flag.String("compression", "symmetric", "none or symmetric")
	showProfile := flag.Bool("profile", false, "report elapsed time per construction phase on stderr")

	flag.Parse()
	defer func() {
		if !*showProfile {
			return
		}
		for _, e := range prof.SnapshotAndReset() {
			fmt.Fprintf(os.Stderr, "prof: %s took %s\n", e.Label, e.Dur)
		}
	}()

	param, err := config.ParseSize(*sizeSpec)
	if err != nil {
		log.Fatalf("latbuilder: %v", err)
	}
	w, err := config.ParseWeights(*weightSpec)
	if err != nil {
		log.Fatalf("latbuilder: %v", err)
	}
	if err := weights.Validate(w, *dimension); err != nil {
		log.Fatalf("latbuilder: %v", err)
	}

	compr := storage.Symmetric
	if *compression == "none" {
		compr = storage.None
	}

	if *construction == "digital-net" {
		runNet(param, *dimension, w, *figure, *explore, *sampleSize, *maxOrder, *seed, *jsonlPath)
		return
	}
	runLattice(param, *dimension, compr, w, *figure, *explore, *sampleSize, *mixedThreshold, *seed, *jsonlPath)
}

func buildExplorer(kind string, sampleSize, mixedThreshold int, seed uint64) search.Explorer {
	switch kind {
	case "random":
		return search.NewRandomExplorer(sampleSize, seed)
	case "mixed":
		return &search.MixedExplorer{Threshold: mixedThreshold, Random: search.NewRandomExplorer(sampleSize, seed)}
	default:
		return search.FullExplorer{}
	}
}

func buildKernel(name string) kernel.Kernel {
	switch name {
	case "P2":
		return kernel.PAlpha{Alpha: 2}
	case "P4":
		return kernel.PAlpha{Alpha: 4}
	case "R":
		return kernel.R{}
	case "P2-PLR":
		return kernel.PAlphaPLR{Alpha: 2}
	case "R-PLR":
		return kernel.RPLR{}
	case "IA2":
		return kernel.IAAlpha{Alpha: 2}
	case "IB":
		return kernel.IB{}
	case "IC2":
		return kernel.ICAlpha{Alpha: 2}
	default:
		log.Fatalf("latbuilder: unknown figure %q", name)
		return nil
	}
}

func runLattice(param sizeparam.Param, dimension int, compr storage.Compression, w weights.Weights, figureName, explore string, sampleSize, mixedThreshold int, seed uint64, jsonlPath string) {
	defer prof.Track(time.Now(), "runLattice")
	k := buildKernel(figureName)
	s := storage.New(param, compr)
	ip := innerproduct.New(s, k)
	st := coorduniform.NewState(s, w, dimension)
	pool := innerproduct.ProdSeq(param)
	exp := buildExplorer(explore, sampleSize, mixedThreshold, seed)
	driver := search.NewDriver(ip, st, dimension, exp)

	var jw *report.JSONLWriter
	if jsonlPath != "" {
		f, err := os.Create(jsonlPath)
		if err != nil {
			log.Fatalf("latbuilder: %v", err)
		}
		defer f.Close()
		jw = report.NewJSONLWriter(f)
	}
	driver.OnProgress(func(dim int, gen coorduniform.GenValue, m storage.MeritValue) {
		fmt.Fprintf(os.Stderr, "dim %d: merit=%v\n", dim+1, m.Levels)
		if jw != nil {
			jw.WriteMerit(dim, genString(gen), m, "")
		}
	})

	gens, merit := driver.Run(pool)
	lat, err := lattice.New(param, gens)
	if err != nil {
		log.Fatalf("latbuilder: %v", err)
	}
	fmt.Println(report.FormatLattice(lat))
	fmt.Printf("final merit: %v\n", merit.Levels)
}

func buildNetFigure(name string, w weights.Weights, maxOrder int) search.NetFigure {
	switch name {
	case "T":
		return search.UnilevelTValueFigure{CrossCheck: true}
	case "TPROJ":
		return search.WeightedTValueProjFigure{Weights: w, MaxOrder: maxOrder}
	default:
		log.Fatalf("latbuilder: unknown digital-net figure %q (want T or TPROJ)", name)
		return nil
	}
}

func runNet(param sizeparam.Param, dimension int, w weights.Weights, figureName, explore string, sampleSize, maxOrder int, seed uint64, jsonlPath string) {
	defer prof.Track(time.Now(), "runNet")
	m := param.BitLen()
	figure := buildNetFigure(figureName, w, maxOrder)

	var exp search.NetExplorer
	switch explore {
	case "random":
		exp = search.NewRandomNetExplorer(sampleSize, seed)
	default:
		exp = search.FullNetExplorer{}
	}

	driver := search.NewNetDriver(m, dimension, exp, figure)

	var jw *report.JSONLWriter
	if jsonlPath != "" {
		f, err := os.Create(jsonlPath)
		if err != nil {
			log.Fatalf("latbuilder: %v", err)
		}
		defer f.Close()
		jw = report.NewJSONLWriter(f)
	}
	driver.OnProgress(func(dim int, cand search.NetCandidate, m storage.MeritValue) {
		fmt.Fprintf(os.Stderr, "dim %d: table-index=%d merit=%v\n", dim+1, cand.TableIndex, m.Levels)
		if jw != nil {
			jw.WriteMerit(dim, fmt.Sprintf("table-index=%d", cand.TableIndex), m, "")
		}
	})

	n, merit, err := driver.Run(search.NetPool())
	if err != nil {
		log.Fatalf("latbuilder: %v", err)
	}
	fmt.Println(report.FormatNet(n))
	fmt.Printf("final merit: %v\n", merit.Levels)
}

func genString(g coorduniform.GenValue) string {
	if g.IsPoly {
		return g.Poly.String()
	}
	return fmt.Sprintf("%d", g.Int)
}
