package workers

import "github.com/MKhiriev/station-farmer/models"

// Partition splits accounts into at most k contiguous shards of
// ceil(len(accounts)/k) accounts each. Shards keep the input order and never
// overlap; empty shards are not returned. k < 1 is treated as 1.
func Partition(accounts []models.Account, k int) []models.Shard {
	if k < 1 {
		k = 1
	}
	n := len(accounts)
	if n == 0 {
		return nil
	}

	chunk := (n + k - 1) / k
	shards := make([]models.Shard, 0, k)
	for i := 0; i < k; i++ {
		start := i * chunk
		if start >= n {
			break
		}
		end := min(start+chunk, n)
		shards = append(shards, models.Shard{
			Number:   i + 1,
			Offset:   start,
			Accounts: accounts[start:end:end],
		})
	}

	return shards
}
