package output

import (
	"time"

	"github.com/google/uuid"
	"github.com/wesleyorama2/samk/internal/bench"
	"github.com/wesleyorama2/samk/internal/metrics"
)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func sampleResult() (*bench.Result, metrics.Summary) {
	result := &bench.Result{
		ID:      uuid.MustParse("6f1c3c1e-8d3a-4b2a-9a55-1f0c2d3e4f50"),
		RunName: "smoke",
		URL:     "http://127.0.0.1:8080/",
		Method:  "GET",
		Samples: []metrics.Sample{
			{Run: 1, StatusCode: 200, ServerIP: "127.0.0.1", BytesRead: 10, NameLookup: ms(1), Connect: ms(2), StartTransfer: ms(10), Total: ms(20)},
			{Run: 2, StatusCode: 200, ServerIP: "127.0.0.1", BytesRead: 10, NameLookup: ms(1), Connect: ms(3), StartTransfer: ms(12), Total: ms(30)},
			{Run: 3, StatusCode: 200, ServerIP: "127.0.0.1", BytesRead: 10, NameLookup: ms(2), Connect: ms(4), StartTransfer: ms(14), Total: ms(40)},
		},
	}
	return result, metrics.Summarize(result.Samples)
}
