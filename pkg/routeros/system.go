package routeros

import (
	"context"
	"math"
	"strconv"

	"github.com/pkg/errors"
)

var epSystemResource = Endpoint{Path: "/system/resource/print"}

// SystemInfo returns the first system resource record, which is how RouterOS
// reports device-wide information.
func (x *Client) SystemInfo(ctx context.Context) (Record, error) {
	records, err := x.Print(ctx, epSystemResource, nil)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		Logger.Warn("Empty system info response")
		return Record{}, nil
	}
	return records[0], nil
}

// SystemResources returns all system resource records.
func (x *Client) SystemResources(ctx context.Context) ([]Record, error) {
	return x.Print(ctx, epSystemResource, nil)
}

// Health summarizes system resource usage.
type Health struct {
	Status             string  `json:"status"`
	Uptime             string  `json:"uptime"`
	Version            string  `json:"version"`
	CPULoad            string  `json:"cpu_load"`
	MemoryUsagePercent float64 `json:"memory_usage_percent"`
	DiskUsagePercent   float64 `json:"disk_usage_percent"`
	FreeMemoryMB       float64 `json:"free_memory_mb"`
	FreeDiskMB         float64 `json:"free_disk_mb"`
}

// SystemHealth derives usage percentages and an overall status from the
// system resource record.
func (x *Client) SystemHealth(ctx context.Context) (*Health, error) {
	info, err := x.SystemInfo(ctx)
	if err != nil {
		return nil, err
	}
	if len(info) == 0 {
		return nil, errors.New("no system information available")
	}

	totalMem := numberField(info, "total-memory")
	freeMem := numberField(info, "free-memory")
	totalDisk := numberField(info, "total-hdd-space")
	freeDisk := numberField(info, "free-hdd-space")

	var memUsage, diskUsage float64
	if totalMem > 0 {
		memUsage = (totalMem - freeMem) / totalMem * 100
	}
	if totalDisk > 0 {
		diskUsage = (totalDisk - freeDisk) / totalDisk * 100
	}

	return &Health{
		Status:             healthStatus(memUsage, diskUsage),
		Uptime:             stringField(info, "uptime"),
		Version:            stringField(info, "version"),
		CPULoad:            stringField(info, "cpu-load"),
		MemoryUsagePercent: round2(memUsage),
		DiskUsagePercent:   round2(diskUsage),
		FreeMemoryMB:       round2(freeMem / (1024 * 1024)),
		FreeDiskMB:         round2(freeDisk / (1024 * 1024)),
	}, nil
}

func healthStatus(memUsage, diskUsage float64) string {
	switch {
	case memUsage > 90 || diskUsage > 90:
		return "critical"
	case memUsage > 80 || diskUsage > 80:
		return "warning"
	case memUsage > 70 || diskUsage > 70:
		return "attention"
	default:
		return "healthy"
	}
}

func stringField(rec Record, key string) string {
	if v, ok := rec[key].(string); ok {
		return v
	}
	return ""
}

// numberField reads a numeric property that may arrive as a JSON number or
// as a quoted string.
func numberField(rec Record, key string) float64 {
	switch v := rec[key].(type) {
	case float64:
		return v
	case string:
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
