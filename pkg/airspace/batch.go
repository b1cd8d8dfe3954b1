package airspace

import (
	"fmt"
	"io"
	"runtime"
	"sync"
)

// BatchOptions controls parallel conversion behavior and error handling.
type BatchOptions struct {
	// Parallel enables concurrent conversion.
	// When true, airspaces are converted using multiple worker goroutines.
	Parallel bool

	// Workers specifies the number of conversion goroutines.
	// If 0, defaults to runtime.NumCPU().
	// Only used when Parallel is true.
	Workers int

	// SkipErrors causes conversion to continue when individual airspaces
	// fail. Failed airspaces are skipped and their errors collected.
	// When false, the first error stops the batch and is returned alone.
	SkipErrors bool

	// Progress is an optional callback for tracking conversion progress.
	// Called after each airspace is converted (successfully or with error).
	Progress func(converted, total int)

	// ErrorLog is an optional writer for detailed error reporting.
	// Each conversion error is written here with the airspace identifier.
	ErrorLog io.Writer

	// SkipUnknown drops airspaces whose type code is not in the known
	// vocabulary before conversion, without recording an error. When false,
	// unknown codes convert normally with an empty canonical type name.
	SkipUnknown bool

	// Convert holds the per-airspace conversion options.
	Convert ConvertOptions
}

// DefaultBatchOptions returns batch options with sensible defaults.
func DefaultBatchOptions() BatchOptions {
	return BatchOptions{
		Parallel:   true,
		Workers:    runtime.NumCPU(),
		SkipErrors: true,
		Convert:    DefaultConvertOptions(),
	}
}

// ConvertAll converts a set of airspaces, optionally in parallel.
//
// The returned features preserve the input order; airspaces that failed
// to convert are simply absent from it. Conversion is CPU-bound, so the
// worker pool gives near-linear speedup on multi-core machines for large
// airspace files.
//
// Example:
//
//	converter := airspace.NewConverter()
//	features, errs := airspace.ConvertAll(converter, airspaces,
//	    airspace.BatchOptions{
//	        Parallel:   true,
//	        SkipErrors: true,
//	        Progress: func(converted, total int) {
//	            fmt.Printf("\rConverting: %d/%d", converted, total)
//	        },
//	    })
//
//	if len(errs) > 0 {
//	    fmt.Printf("\nSkipped %d airspaces due to errors\n", len(errs))
//	}
func ConvertAll(converter Converter, airspaces []Airspace, opts BatchOptions) ([]*Feature, []error) {
	if opts.SkipUnknown {
		kept := make([]Airspace, 0, len(airspaces))
		for _, a := range airspaces {
			if a.Type != "" {
				if _, err := TypeName(a.Type); err != nil {
					continue
				}
			}
			kept = append(kept, a)
		}
		airspaces = kept
	}

	if len(airspaces) == 0 {
		return []*Feature{}, nil
	}

	if !opts.Parallel {
		return convertAllSerial(converter, airspaces, opts)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(airspaces) {
		workers = len(airspaces)
	}

	type convertResult struct {
		index   int
		feature *Feature
		err     error
	}

	jobs := make(chan int, len(airspaces))
	results := make(chan convertResult, len(airspaces))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				feature, err := converter.ConvertWithOptions(airspaces[index], opts.Convert)
				results <- convertResult{
					index:   index,
					feature: feature,
					err:     err,
				}
			}
		}()
	}

	for i := range airspaces {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	featureMap := make(map[int]*Feature)
	var errors []error
	converted := 0

	for result := range results {
		converted++

		if opts.Progress != nil {
			opts.Progress(converted, len(airspaces))
		}

		if result.err != nil {
			if opts.ErrorLog != nil {
				fmt.Fprintf(opts.ErrorLog, "Error converting airspace: %v\n", result.err)
			}

			if opts.SkipErrors {
				errors = append(errors, result.err)
				continue
			}
			return nil, []error{result.err}
		}

		featureMap[result.index] = result.feature
	}

	// Rebuild input order from the completion-ordered results
	features := make([]*Feature, 0, len(featureMap))
	for i := 0; i < len(airspaces); i++ {
		if feature, ok := featureMap[i]; ok {
			features = append(features, feature)
		}
	}

	return features, errors
}

// convertAllSerial converts airspaces one at a time (Parallel=false).
func convertAllSerial(converter Converter, airspaces []Airspace, opts BatchOptions) ([]*Feature, []error) {
	features := make([]*Feature, 0, len(airspaces))
	var errors []error

	for i, a := range airspaces {
		if opts.Progress != nil {
			opts.Progress(i, len(airspaces))
		}

		feature, err := converter.ConvertWithOptions(a, opts.Convert)
		if err != nil {
			if opts.ErrorLog != nil {
				fmt.Fprintf(opts.ErrorLog, "Error converting airspace: %v\n", err)
			}

			if opts.SkipErrors {
				errors = append(errors, err)
				continue
			}
			return nil, []error{err}
		}

		features = append(features, feature)
	}

	if opts.Progress != nil {
		opts.Progress(len(airspaces), len(airspaces))
	}

	return features, errors
}
