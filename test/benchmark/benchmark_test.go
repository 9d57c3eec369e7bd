package benchmark

import (
	"context"
	"fmt"
	"testing"

	"github.com/elearn-admin-gateway/internal/aggregate"
	"github.com/elearn-admin-gateway/internal/fanout"
	"github.com/elearn-admin-gateway/internal/models"
)

// BenchmarkParseDuration benchmarks duration-string parsing
func BenchmarkParseDuration(b *testing.B) {
	inputs := []string{"2h 15m", "45m", "3h", "", "1h 1m"}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		aggregate.ParseDuration(inputs[i%len(inputs)])
	}
}

// BenchmarkByCourse benchmarks aggregating 1000 time-spent records
func BenchmarkByCourse(b *testing.B) {
	records := make([]models.TimeSpentRecord, 1000)
	courses := []string{"C01", "C02", "C03", "C99"}
	for i := range records {
		records[i] = models.TimeSpentRecord{
			UserID:    fmt.Sprintf("user-%04d", i),
			CourseID:  courses[i%len(courses)],
			TimeSpent: fmt.Sprintf("%dh %dm", i%4, i%60),
		}
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		aggregate.ByCourse(records)
	}

	b.ReportMetric(float64(1000*b.N)/b.Elapsed().Seconds(), "records/sec")
}

// BenchmarkUserDistribution benchmarks bucketing 1000 users by course
func BenchmarkUserDistribution(b *testing.B) {
	users := make([]models.UserRecord, 1000)
	courses := []string{"Information Technology", "Education", "Accountancy", ""}
	for i := range users {
		users[i] = models.UserRecord{
			ID:     fmt.Sprintf("user-%04d", i),
			Course: courses[i%len(courses)],
		}
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		aggregate.UserDistribution(users)
	}
}

// BenchmarkFanoutMap benchmarks the enrichment fan-out over 100 items
func BenchmarkFanoutMap(b *testing.B) {
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		fanout.Map(context.Background(), items, 16, func(_ context.Context, v int) (int, error) {
			return v * 2, nil
		})
	}

	b.ReportMetric(float64(100*b.N)/b.Elapsed().Seconds(), "lookups/sec")
}
