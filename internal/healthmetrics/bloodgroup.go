package healthmetrics

func alleles(g BloodGroup) [2]BloodGroup {
	switch g {
	case BloodGroupA:
		return [2]BloodGroup{BloodGroupA, BloodGroupO}
	case BloodGroupB:
		return [2]BloodGroup{BloodGroupB, BloodGroupO}
	case BloodGroupAB:
		return [2]BloodGroup{BloodGroupA, BloodGroupB}
	case BloodGroupO:
		return [2]BloodGroup{BloodGroupO, BloodGroupO}
	}
	return [2]BloodGroup{BloodGroupO, BloodGroupO}
}

func phenotype(a, b BloodGroup) BloodGroup {
	switch {
	case a == BloodGroupO && b == BloodGroupO:
		return BloodGroupO
	case a == BloodGroupA && b == BloodGroupB, a == BloodGroupB && b == BloodGroupA:
		return BloodGroupAB
	case a == BloodGroupA || b == BloodGroupA:
		return BloodGroupA
	}
	return BloodGroupB
}

// OffspringBloodGroups returns every phenotype reachable by crossing one
// allele from each parent, in A, B, AB, O order. It is a possibility set and
// carries no probabilities. Unrecognized groups are treated as O.
func OffspringBloodGroups(parent1, parent2 BloodGroup) []BloodGroup {
	seen := make(map[BloodGroup]bool, 4)
	for _, a := range alleles(parent1) {
		for _, b := range alleles(parent2) {
			seen[phenotype(a, b)] = true
		}
	}
	out := make([]BloodGroup, 0, len(seen))
	for _, g := range []BloodGroup{BloodGroupA, BloodGroupB, BloodGroupAB, BloodGroupO} {
		if seen[g] {
			out = append(out, g)
		}
	}
	return out
}
