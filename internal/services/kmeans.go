package services

import "github.com/aserravalle/travelling-salesman-backend/internal/domain"

// ClusterJobs partitions jobs into k geographic groups by k-means over
// their coordinates and annotates each job with an integer cluster id.
// k is clamped to the number of jobs. Cluster numbering is not meaningful
// across runs; the contract is only a stable partition of the points.
//
// Clustering is skipped entirely (returning false, leaving every
// job.Cluster nil) when k <= 0, the job list is empty, or any job lacks
// resolved coordinates — the dispatcher then falls back to ungrouped
// processing.
func ClusterJobs(jobs []*domain.Job, k int) bool {
	if k <= 0 || len(jobs) == 0 {
		return false
	}

	points := make([][2]float64, len(jobs))
	for i, job := range jobs {
		if !job.Location.Resolved() {
			return false
		}
		points[i] = [2]float64{job.Location.Coordinates.Latitude, job.Location.Coordinates.Longitude}
	}

	if k > len(points) {
		k = len(points)
	}

	centroids := seedCentroids(points, k)
	assignment := make([]int, len(points))

	for iter := 0; iter < 100; iter++ {
		changed := false
		for i, p := range points {
			c := nearestCentroid(p, centroids)
			if c != assignment[i] {
				assignment[i] = c
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}

		// Recompute centroids as the mean of their members. An empty
		// cluster keeps its previous centroid.
		sums := make([][2]float64, k)
		counts := make([]int, k)
		for i, p := range points {
			c := assignment[i]
			sums[c][0] += p[0]
			sums[c][1] += p[1]
			counts[c]++
		}
		for c := 0; c < k; c++ {
			if counts[c] > 0 {
				centroids[c] = [2]float64{sums[c][0] / float64(counts[c]), sums[c][1] / float64(counts[c])}
			}
		}
	}

	for i, job := range jobs {
		id := assignment[i]
		job.Cluster = &id
	}
	return true
}

// seedCentroids picks k initial centroids deterministically: the first
// point, then repeatedly the point farthest from its nearest chosen
// centroid (maximin). Deterministic seeding keeps dispatch runs
// reproducible for identical input.
func seedCentroids(points [][2]float64, k int) [][2]float64 {
	centroids := make([][2]float64, 0, k)
	centroids = append(centroids, points[0])

	for len(centroids) < k {
		bestIdx := 0
		bestDist := -1.0
		for i, p := range points {
			d := distToNearest(p, centroids)
			if d > bestDist {
				bestDist = d
				bestIdx = i
			}
		}
		centroids = append(centroids, points[bestIdx])
	}
	return centroids
}

func nearestCentroid(p [2]float64, centroids [][2]float64) int {
	best := 0
	bestDist := sqDist(p, centroids[0])
	for c := 1; c < len(centroids); c++ {
		if d := sqDist(p, centroids[c]); d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}

func distToNearest(p [2]float64, centroids [][2]float64) float64 {
	best := sqDist(p, centroids[0])
	for c := 1; c < len(centroids); c++ {
		if d := sqDist(p, centroids[c]); d < best {
			best = d
		}
	}
	return best
}

func sqDist(a, b [2]float64) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	return dx*dx + dy*dy
}
