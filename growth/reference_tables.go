/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package growth

// TableDefinition represents one (sex, measurement type) reference table
type TableDefinition struct {
	Sex     Sex
	Type    MeasurementType
	Entries []LMSEntry
}

// GetReferenceTableDefinitions returns the embedded LMS reference data.
//
// Values approximate the published infant growth references (birth to 36
// months) at monthly resolution. They are suitable for screening and
// charting, not as a substitute for the official tables.
func GetReferenceTableDefinitions() []TableDefinition {
	return []TableDefinition{
		// ===== WEIGHT-FOR-AGE (kg) =====
		{
			Sex: SexMale, Type: MeasurementWeight,
			Entries: []LMSEntry{
				{AgeMonths: 0, L: 0.3487, M: 3.3464, S: 0.14602},
				{AgeMonths: 1, L: 0.2297, M: 4.4709, S: 0.13395},
				{AgeMonths: 2, L: 0.1970, M: 5.5675, S: 0.12385},
				{AgeMonths: 3, L: 0.1738, M: 6.3762, S: 0.11727},
				{AgeMonths: 4, L: 0.1553, M: 7.0023, S: 0.11316},
				{AgeMonths: 5, L: 0.1395, M: 7.5105, S: 0.11080},
				{AgeMonths: 6, L: 0.1257, M: 7.9340, S: 0.10958},
				{AgeMonths: 7, L: 0.1144, M: 8.2565, S: 0.10932},
				{AgeMonths: 8, L: 0.1030, M: 8.5789, S: 0.10907},
				{AgeMonths: 9, L: 0.0917, M: 8.9014, S: 0.10881},
				{AgeMonths: 10, L: 0.0826, M: 9.1502, S: 0.10896},
				{AgeMonths: 11, L: 0.0735, M: 9.3991, S: 0.10910},
				{AgeMonths: 12, L: 0.0644, M: 9.6479, S: 0.10925},
				{AgeMonths: 13, L: 0.0572, M: 9.8630, S: 0.10952},
				{AgeMonths: 14, L: 0.0500, M: 10.0781, S: 0.10979},
				{AgeMonths: 15, L: 0.0427, M: 10.2932, S: 0.11006},
				{AgeMonths: 16, L: 0.0355, M: 10.5083, S: 0.11034},
				{AgeMonths: 17, L: 0.0283, M: 10.7234, S: 0.11061},
				{AgeMonths: 18, L: 0.0211, M: 10.9385, S: 0.11088},
				{AgeMonths: 19, L: 0.0153, M: 11.1407, S: 0.11144},
				{AgeMonths: 20, L: 0.0095, M: 11.3428, S: 0.11201},
				{AgeMonths: 21, L: 0.0037, M: 11.5450, S: 0.11257},
				{AgeMonths: 22, L: -0.0021, M: 11.7472, S: 0.11313},
				{AgeMonths: 23, L: -0.0079, M: 11.9493, S: 0.11370},
				{AgeMonths: 24, L: -0.0137, M: 12.1515, S: 0.11426},
				{AgeMonths: 25, L: -0.0184, M: 12.3429, S: 0.11470},
				{AgeMonths: 26, L: -0.0230, M: 12.5343, S: 0.11514},
				{AgeMonths: 27, L: -0.0277, M: 12.7258, S: 0.11558},
				{AgeMonths: 28, L: -0.0324, M: 12.9172, S: 0.11602},
				{AgeMonths: 29, L: -0.0370, M: 13.1086, S: 0.11646},
				{AgeMonths: 30, L: -0.0417, M: 13.3000, S: 0.11690},
				{AgeMonths: 31, L: -0.0459, M: 13.4738, S: 0.11732},
				{AgeMonths: 32, L: -0.0502, M: 13.6476, S: 0.11775},
				{AgeMonths: 33, L: -0.0544, M: 13.8215, S: 0.11818},
				{AgeMonths: 34, L: -0.0586, M: 13.9953, S: 0.11860},
				{AgeMonths: 35, L: -0.0629, M: 14.1691, S: 0.11903},
				{AgeMonths: 36, L: -0.0671, M: 14.3429, S: 0.11945},
			},
		},
		{
			Sex: SexFemale, Type: MeasurementWeight,
			Entries: []LMSEntry{
				{AgeMonths: 0, L: 0.3809, M: 3.2322, S: 0.14171},
				{AgeMonths: 1, L: 0.1714, M: 4.1873, S: 0.13724},
				{AgeMonths: 2, L: 0.0962, M: 5.1282, S: 0.13000},
				{AgeMonths: 3, L: 0.0402, M: 5.8458, S: 0.12619},
				{AgeMonths: 4, L: -0.0050, M: 6.4237, S: 0.12402},
				{AgeMonths: 5, L: -0.0430, M: 6.8985, S: 0.12274},
				{AgeMonths: 6, L: -0.0756, M: 7.2970, S: 0.12204},
				{AgeMonths: 7, L: -0.1006, M: 7.6065, S: 0.12188},
				{AgeMonths: 8, L: -0.1256, M: 7.9159, S: 0.12173},
				{AgeMonths: 9, L: -0.1506, M: 8.2254, S: 0.12157},
				{AgeMonths: 10, L: -0.1679, M: 8.4663, S: 0.12194},
				{AgeMonths: 11, L: -0.1851, M: 8.7072, S: 0.12231},
				{AgeMonths: 12, L: -0.2024, M: 8.9481, S: 0.12268},
				{AgeMonths: 13, L: -0.2126, M: 9.1620, S: 0.12319},
				{AgeMonths: 14, L: -0.2228, M: 9.3759, S: 0.12371},
				{AgeMonths: 15, L: -0.2330, M: 9.5898, S: 0.12423},
				{AgeMonths: 16, L: -0.2433, M: 9.8037, S: 0.12474},
				{AgeMonths: 17, L: -0.2535, M: 10.0176, S: 0.12526},
				{AgeMonths: 18, L: -0.2637, M: 10.2315, S: 0.12577},
				{AgeMonths: 19, L: -0.2688, M: 10.4392, S: 0.12634},
				{AgeMonths: 20, L: -0.2738, M: 10.6468, S: 0.12692},
				{AgeMonths: 21, L: -0.2789, M: 10.8545, S: 0.12749},
				{AgeMonths: 22, L: -0.2840, M: 11.0622, S: 0.12806},
				{AgeMonths: 23, L: -0.2890, M: 11.2698, S: 0.12864},
				{AgeMonths: 24, L: -0.2941, M: 11.4775, S: 0.12921},
				{AgeMonths: 25, L: -0.2965, M: 11.6646, S: 0.12981},
				{AgeMonths: 26, L: -0.2989, M: 11.8517, S: 0.13041},
				{AgeMonths: 27, L: -0.3014, M: 12.0388, S: 0.13100},
				{AgeMonths: 28, L: -0.3038, M: 12.2258, S: 0.13160},
				{AgeMonths: 29, L: -0.3062, M: 12.4129, S: 0.13220},
				{AgeMonths: 30, L: -0.3086, M: 12.6000, S: 0.13280},
				{AgeMonths: 31, L: -0.3093, M: 12.8084, S: 0.13330},
				{AgeMonths: 32, L: -0.3100, M: 13.0168, S: 0.13381},
				{AgeMonths: 33, L: -0.3107, M: 13.2251, S: 0.13431},
				{AgeMonths: 34, L: -0.3114, M: 13.4335, S: 0.13481},
				{AgeMonths: 35, L: -0.3121, M: 13.6419, S: 0.13532},
				{AgeMonths: 36, L: -0.3128, M: 13.8503, S: 0.13582},
			},
		},

		// ===== LENGTH/HEIGHT-FOR-AGE (cm) =====
		// Recumbent length; L is fixed at 1 (normal distribution)
		{
			Sex: SexMale, Type: MeasurementHeight,
			Entries: []LMSEntry{
				{AgeMonths: 0, L: 1.0000, M: 49.8842, S: 0.03795},
				{AgeMonths: 1, L: 1.0000, M: 54.7244, S: 0.03557},
				{AgeMonths: 2, L: 1.0000, M: 58.4249, S: 0.03424},
				{AgeMonths: 3, L: 1.0000, M: 61.4292, S: 0.03328},
				{AgeMonths: 4, L: 1.0000, M: 63.8860, S: 0.03257},
				{AgeMonths: 5, L: 1.0000, M: 65.9026, S: 0.03204},
				{AgeMonths: 6, L: 1.0000, M: 67.6236, S: 0.03165},
				{AgeMonths: 7, L: 1.0000, M: 69.0824, S: 0.03147},
				{AgeMonths: 8, L: 1.0000, M: 70.5412, S: 0.03128},
				{AgeMonths: 9, L: 1.0000, M: 72.0000, S: 0.03110},
				{AgeMonths: 10, L: 1.0000, M: 73.2496, S: 0.03119},
				{AgeMonths: 11, L: 1.0000, M: 74.4992, S: 0.03128},
				{AgeMonths: 12, L: 1.0000, M: 75.7488, S: 0.03137},
				{AgeMonths: 13, L: 1.0000, M: 76.8338, S: 0.03156},
				{AgeMonths: 14, L: 1.0000, M: 77.9188, S: 0.03176},
				{AgeMonths: 15, L: 1.0000, M: 79.0037, S: 0.03195},
				{AgeMonths: 16, L: 1.0000, M: 80.0887, S: 0.03214},
				{AgeMonths: 17, L: 1.0000, M: 81.1737, S: 0.03234},
				{AgeMonths: 18, L: 1.0000, M: 82.2587, S: 0.03253},
				{AgeMonths: 19, L: 1.0000, M: 83.1849, S: 0.03274},
				{AgeMonths: 20, L: 1.0000, M: 84.1112, S: 0.03295},
				{AgeMonths: 21, L: 1.0000, M: 85.0374, S: 0.03316},
				{AgeMonths: 22, L: 1.0000, M: 85.9636, S: 0.03336},
				{AgeMonths: 23, L: 1.0000, M: 86.8899, S: 0.03357},
				{AgeMonths: 24, L: 1.0000, M: 87.8161, S: 0.03378},
				{AgeMonths: 25, L: 1.0000, M: 88.4968, S: 0.03405},
				{AgeMonths: 26, L: 1.0000, M: 89.1774, S: 0.03432},
				{AgeMonths: 27, L: 1.0000, M: 89.8581, S: 0.03459},
				{AgeMonths: 28, L: 1.0000, M: 90.5387, S: 0.03486},
				{AgeMonths: 29, L: 1.0000, M: 91.2194, S: 0.03513},
				{AgeMonths: 30, L: 1.0000, M: 91.9000, S: 0.03540},
				{AgeMonths: 31, L: 1.0000, M: 92.5977, S: 0.03567},
				{AgeMonths: 32, L: 1.0000, M: 93.2954, S: 0.03595},
				{AgeMonths: 33, L: 1.0000, M: 93.9931, S: 0.03623},
				{AgeMonths: 34, L: 1.0000, M: 94.6907, S: 0.03650},
				{AgeMonths: 35, L: 1.0000, M: 95.3884, S: 0.03678},
				{AgeMonths: 36, L: 1.0000, M: 96.0861, S: 0.03705},
			},
		},
		{
			Sex: SexFemale, Type: MeasurementHeight,
			Entries: []LMSEntry{
				{AgeMonths: 0, L: 1.0000, M: 49.1477, S: 0.03790},
				{AgeMonths: 1, L: 1.0000, M: 53.6872, S: 0.03640},
				{AgeMonths: 2, L: 1.0000, M: 57.0673, S: 0.03568},
				{AgeMonths: 3, L: 1.0000, M: 59.8029, S: 0.03520},
				{AgeMonths: 4, L: 1.0000, M: 62.0899, S: 0.03486},
				{AgeMonths: 5, L: 1.0000, M: 64.0301, S: 0.03463},
				{AgeMonths: 6, L: 1.0000, M: 65.7311, S: 0.03448},
				{AgeMonths: 7, L: 1.0000, M: 67.2019, S: 0.03448},
				{AgeMonths: 8, L: 1.0000, M: 68.6727, S: 0.03448},
				{AgeMonths: 9, L: 1.0000, M: 70.1435, S: 0.03448},
				{AgeMonths: 10, L: 1.0000, M: 71.4340, S: 0.03461},
				{AgeMonths: 11, L: 1.0000, M: 72.7245, S: 0.03473},
				{AgeMonths: 12, L: 1.0000, M: 74.0150, S: 0.03486},
				{AgeMonths: 13, L: 1.0000, M: 75.1305, S: 0.03506},
				{AgeMonths: 14, L: 1.0000, M: 76.2460, S: 0.03526},
				{AgeMonths: 15, L: 1.0000, M: 77.3614, S: 0.03546},
				{AgeMonths: 16, L: 1.0000, M: 78.4769, S: 0.03565},
				{AgeMonths: 17, L: 1.0000, M: 79.5924, S: 0.03585},
				{AgeMonths: 18, L: 1.0000, M: 80.7079, S: 0.03605},
				{AgeMonths: 19, L: 1.0000, M: 81.6591, S: 0.03626},
				{AgeMonths: 20, L: 1.0000, M: 82.6104, S: 0.03648},
				{AgeMonths: 21, L: 1.0000, M: 83.5616, S: 0.03669},
				{AgeMonths: 22, L: 1.0000, M: 84.5128, S: 0.03691},
				{AgeMonths: 23, L: 1.0000, M: 85.4641, S: 0.03712},
				{AgeMonths: 24, L: 1.0000, M: 86.4153, S: 0.03734},
				{AgeMonths: 25, L: 1.0000, M: 87.1294, S: 0.03757},
				{AgeMonths: 26, L: 1.0000, M: 87.8435, S: 0.03779},
				{AgeMonths: 27, L: 1.0000, M: 88.5576, S: 0.03802},
				{AgeMonths: 28, L: 1.0000, M: 89.2718, S: 0.03825},
				{AgeMonths: 29, L: 1.0000, M: 89.9859, S: 0.03847},
				{AgeMonths: 30, L: 1.0000, M: 90.7000, S: 0.03870},
				{AgeMonths: 31, L: 1.0000, M: 91.4253, S: 0.03891},
				{AgeMonths: 32, L: 1.0000, M: 92.1505, S: 0.03912},
				{AgeMonths: 33, L: 1.0000, M: 92.8758, S: 0.03933},
				{AgeMonths: 34, L: 1.0000, M: 93.6010, S: 0.03954},
				{AgeMonths: 35, L: 1.0000, M: 94.3263, S: 0.03975},
				{AgeMonths: 36, L: 1.0000, M: 95.0515, S: 0.03996},
			},
		},

		// ===== HEAD CIRCUMFERENCE-FOR-AGE (cm) =====
		{
			Sex: SexMale, Type: MeasurementHeadCircumference,
			Entries: []LMSEntry{
				{AgeMonths: 0, L: 1.0000, M: 34.4618, S: 0.03686},
				{AgeMonths: 1, L: 1.0000, M: 37.2759, S: 0.03133},
				{AgeMonths: 2, L: 1.0000, M: 39.1285, S: 0.02997},
				{AgeMonths: 3, L: 1.0000, M: 40.5135, S: 0.02918},
				{AgeMonths: 4, L: 1.0000, M: 41.6317, S: 0.02868},
				{AgeMonths: 5, L: 1.0000, M: 42.5576, S: 0.02837},
				{AgeMonths: 6, L: 1.0000, M: 43.3306, S: 0.02817},
				{AgeMonths: 7, L: 1.0000, M: 43.8871, S: 0.02808},
				{AgeMonths: 8, L: 1.0000, M: 44.4435, S: 0.02799},
				{AgeMonths: 9, L: 1.0000, M: 45.0000, S: 0.02790},
				{AgeMonths: 10, L: 1.0000, M: 45.3554, S: 0.02790},
				{AgeMonths: 11, L: 1.0000, M: 45.7107, S: 0.02789},
				{AgeMonths: 12, L: 1.0000, M: 46.0661, S: 0.02789},
				{AgeMonths: 13, L: 1.0000, M: 46.2884, S: 0.02794},
				{AgeMonths: 14, L: 1.0000, M: 46.5107, S: 0.02799},
				{AgeMonths: 15, L: 1.0000, M: 46.7330, S: 0.02805},
				{AgeMonths: 16, L: 1.0000, M: 46.9554, S: 0.02810},
				{AgeMonths: 17, L: 1.0000, M: 47.1777, S: 0.02815},
				{AgeMonths: 18, L: 1.0000, M: 47.4000, S: 0.02820},
				{AgeMonths: 19, L: 1.0000, M: 47.5333, S: 0.02825},
				{AgeMonths: 20, L: 1.0000, M: 47.6667, S: 0.02830},
				{AgeMonths: 21, L: 1.0000, M: 47.8000, S: 0.02835},
				{AgeMonths: 22, L: 1.0000, M: 47.9333, S: 0.02840},
				{AgeMonths: 23, L: 1.0000, M: 48.0667, S: 0.02845},
				{AgeMonths: 24, L: 1.0000, M: 48.2000, S: 0.02850},
				{AgeMonths: 25, L: 1.0000, M: 48.3167, S: 0.02855},
				{AgeMonths: 26, L: 1.0000, M: 48.4333, S: 0.02860},
				{AgeMonths: 27, L: 1.0000, M: 48.5500, S: 0.02865},
				{AgeMonths: 28, L: 1.0000, M: 48.6667, S: 0.02870},
				{AgeMonths: 29, L: 1.0000, M: 48.7833, S: 0.02875},
				{AgeMonths: 30, L: 1.0000, M: 48.9000, S: 0.02880},
				{AgeMonths: 31, L: 1.0000, M: 49.0000, S: 0.02885},
				{AgeMonths: 32, L: 1.0000, M: 49.1000, S: 0.02890},
				{AgeMonths: 33, L: 1.0000, M: 49.2000, S: 0.02895},
				{AgeMonths: 34, L: 1.0000, M: 49.3000, S: 0.02900},
				{AgeMonths: 35, L: 1.0000, M: 49.4000, S: 0.02905},
				{AgeMonths: 36, L: 1.0000, M: 49.5000, S: 0.02910},
			},
		},
		{
			Sex: SexFemale, Type: MeasurementHeadCircumference,
			Entries: []LMSEntry{
				{AgeMonths: 0, L: 1.0000, M: 33.8787, S: 0.03496},
				{AgeMonths: 1, L: 1.0000, M: 36.5463, S: 0.03210},
				{AgeMonths: 2, L: 1.0000, M: 38.2521, S: 0.03168},
				{AgeMonths: 3, L: 1.0000, M: 39.5328, S: 0.03140},
				{AgeMonths: 4, L: 1.0000, M: 40.5817, S: 0.03119},
				{AgeMonths: 5, L: 1.0000, M: 41.4590, S: 0.03102},
				{AgeMonths: 6, L: 1.0000, M: 42.1995, S: 0.03087},
				{AgeMonths: 7, L: 1.0000, M: 42.7330, S: 0.03078},
				{AgeMonths: 8, L: 1.0000, M: 43.2665, S: 0.03069},
				{AgeMonths: 9, L: 1.0000, M: 43.8000, S: 0.03060},
				{AgeMonths: 10, L: 1.0000, M: 44.1667, S: 0.03057},
				{AgeMonths: 11, L: 1.0000, M: 44.5333, S: 0.03053},
				{AgeMonths: 12, L: 1.0000, M: 44.9000, S: 0.03050},
				{AgeMonths: 13, L: 1.0000, M: 45.1167, S: 0.03053},
				{AgeMonths: 14, L: 1.0000, M: 45.3333, S: 0.03057},
				{AgeMonths: 15, L: 1.0000, M: 45.5500, S: 0.03060},
				{AgeMonths: 16, L: 1.0000, M: 45.7667, S: 0.03063},
				{AgeMonths: 17, L: 1.0000, M: 45.9833, S: 0.03067},
				{AgeMonths: 18, L: 1.0000, M: 46.2000, S: 0.03070},
				{AgeMonths: 19, L: 1.0000, M: 46.3667, S: 0.03075},
				{AgeMonths: 20, L: 1.0000, M: 46.5333, S: 0.03080},
				{AgeMonths: 21, L: 1.0000, M: 46.7000, S: 0.03085},
				{AgeMonths: 22, L: 1.0000, M: 46.8667, S: 0.03090},
				{AgeMonths: 23, L: 1.0000, M: 47.0333, S: 0.03095},
				{AgeMonths: 24, L: 1.0000, M: 47.2000, S: 0.03100},
				{AgeMonths: 25, L: 1.0000, M: 47.3167, S: 0.03105},
				{AgeMonths: 26, L: 1.0000, M: 47.4333, S: 0.03110},
				{AgeMonths: 27, L: 1.0000, M: 47.5500, S: 0.03115},
				{AgeMonths: 28, L: 1.0000, M: 47.6667, S: 0.03120},
				{AgeMonths: 29, L: 1.0000, M: 47.7833, S: 0.03125},
				{AgeMonths: 30, L: 1.0000, M: 47.9000, S: 0.03130},
				{AgeMonths: 31, L: 1.0000, M: 48.0000, S: 0.03135},
				{AgeMonths: 32, L: 1.0000, M: 48.1000, S: 0.03140},
				{AgeMonths: 33, L: 1.0000, M: 48.2000, S: 0.03145},
				{AgeMonths: 34, L: 1.0000, M: 48.3000, S: 0.03150},
				{AgeMonths: 35, L: 1.0000, M: 48.4000, S: 0.03155},
				{AgeMonths: 36, L: 1.0000, M: 48.5000, S: 0.03160},
			},
		},

		// ===== BMI-FOR-AGE (kg/m²) =====
		// Infant BMI peaks near 9 months and declines through the second year
		{
			Sex: SexMale, Type: MeasurementBMI,
			Entries: []LMSEntry{
				{AgeMonths: 0, L: -0.3053, M: 13.4069, S: 0.09560},
				{AgeMonths: 1, L: 0.2708, M: 14.9441, S: 0.09027},
				{AgeMonths: 2, L: 0.1118, M: 16.3195, S: 0.08677},
				{AgeMonths: 3, L: 0.0068, M: 16.8987, S: 0.08495},
				{AgeMonths: 4, L: 0.0179, M: 17.0458, S: 0.08413},
				{AgeMonths: 5, L: 0.0289, M: 17.1929, S: 0.08332},
				{AgeMonths: 6, L: 0.0400, M: 17.3400, S: 0.08250},
				{AgeMonths: 7, L: 0.0433, M: 17.3767, S: 0.08227},
				{AgeMonths: 8, L: 0.0467, M: 17.4133, S: 0.08203},
				{AgeMonths: 9, L: 0.0500, M: 17.4500, S: 0.08180},
				{AgeMonths: 10, L: 0.0500, M: 17.4000, S: 0.08187},
				{AgeMonths: 11, L: 0.0500, M: 17.3500, S: 0.08193},
				{AgeMonths: 12, L: 0.0500, M: 17.3000, S: 0.08200},
				{AgeMonths: 13, L: 0.0467, M: 17.2083, S: 0.08192},
				{AgeMonths: 14, L: 0.0433, M: 17.1167, S: 0.08183},
				{AgeMonths: 15, L: 0.0400, M: 17.0250, S: 0.08175},
				{AgeMonths: 16, L: 0.0367, M: 16.9333, S: 0.08167},
				{AgeMonths: 17, L: 0.0333, M: 16.8417, S: 0.08158},
				{AgeMonths: 18, L: 0.0300, M: 16.7500, S: 0.08150},
				{AgeMonths: 19, L: 0.0267, M: 16.6833, S: 0.08145},
				{AgeMonths: 20, L: 0.0233, M: 16.6167, S: 0.08140},
				{AgeMonths: 21, L: 0.0200, M: 16.5500, S: 0.08135},
				{AgeMonths: 22, L: 0.0167, M: 16.4833, S: 0.08130},
				{AgeMonths: 23, L: 0.0133, M: 16.4167, S: 0.08125},
				{AgeMonths: 24, L: 0.0100, M: 16.3500, S: 0.08120},
				{AgeMonths: 25, L: 0.0050, M: 16.3000, S: 0.08125},
				{AgeMonths: 26, L: 0.0000, M: 16.2500, S: 0.08130},
				{AgeMonths: 27, L: -0.0050, M: 16.2000, S: 0.08135},
				{AgeMonths: 28, L: -0.0100, M: 16.1500, S: 0.08140},
				{AgeMonths: 29, L: -0.0150, M: 16.1000, S: 0.08145},
				{AgeMonths: 30, L: -0.0200, M: 16.0500, S: 0.08150},
				{AgeMonths: 31, L: -0.0250, M: 16.0167, S: 0.08158},
				{AgeMonths: 32, L: -0.0300, M: 15.9833, S: 0.08167},
				{AgeMonths: 33, L: -0.0350, M: 15.9500, S: 0.08175},
				{AgeMonths: 34, L: -0.0400, M: 15.9167, S: 0.08183},
				{AgeMonths: 35, L: -0.0450, M: 15.8833, S: 0.08192},
				{AgeMonths: 36, L: -0.0500, M: 15.8500, S: 0.08200},
			},
		},
		{
			Sex: SexFemale, Type: MeasurementBMI,
			Entries: []LMSEntry{
				{AgeMonths: 0, L: -0.0631, M: 13.3363, S: 0.09272},
				{AgeMonths: 1, L: 0.3448, M: 14.5679, S: 0.09556},
				{AgeMonths: 2, L: 0.1749, M: 15.7679, S: 0.09371},
				{AgeMonths: 3, L: 0.0643, M: 16.3574, S: 0.09254},
				{AgeMonths: 4, L: 0.0495, M: 16.5549, S: 0.09119},
				{AgeMonths: 5, L: 0.0348, M: 16.7525, S: 0.08985},
				{AgeMonths: 6, L: 0.0200, M: 16.9500, S: 0.08850},
				{AgeMonths: 7, L: 0.0133, M: 16.9167, S: 0.08800},
				{AgeMonths: 8, L: 0.0067, M: 16.8833, S: 0.08750},
				{AgeMonths: 9, L: 0.0000, M: 16.8500, S: 0.08700},
				{AgeMonths: 10, L: -0.0067, M: 16.7667, S: 0.08673},
				{AgeMonths: 11, L: -0.0133, M: 16.6833, S: 0.08647},
				{AgeMonths: 12, L: -0.0200, M: 16.6000, S: 0.08620},
				{AgeMonths: 13, L: -0.0250, M: 16.5167, S: 0.08613},
				{AgeMonths: 14, L: -0.0300, M: 16.4333, S: 0.08607},
				{AgeMonths: 15, L: -0.0350, M: 16.3500, S: 0.08600},
				{AgeMonths: 16, L: -0.0400, M: 16.2667, S: 0.08593},
				{AgeMonths: 17, L: -0.0450, M: 16.1833, S: 0.08587},
				{AgeMonths: 18, L: -0.0500, M: 16.1000, S: 0.08580},
				{AgeMonths: 19, L: -0.0550, M: 16.0500, S: 0.08583},
				{AgeMonths: 20, L: -0.0600, M: 16.0000, S: 0.08587},
				{AgeMonths: 21, L: -0.0650, M: 15.9500, S: 0.08590},
				{AgeMonths: 22, L: -0.0700, M: 15.9000, S: 0.08593},
				{AgeMonths: 23, L: -0.0750, M: 15.8500, S: 0.08597},
				{AgeMonths: 24, L: -0.0800, M: 15.8000, S: 0.08600},
				{AgeMonths: 25, L: -0.0833, M: 15.7667, S: 0.08610},
				{AgeMonths: 26, L: -0.0867, M: 15.7333, S: 0.08620},
				{AgeMonths: 27, L: -0.0900, M: 15.7000, S: 0.08630},
				{AgeMonths: 28, L: -0.0933, M: 15.6667, S: 0.08640},
				{AgeMonths: 29, L: -0.0967, M: 15.6333, S: 0.08650},
				{AgeMonths: 30, L: -0.1000, M: 15.6000, S: 0.08660},
				{AgeMonths: 31, L: -0.1033, M: 15.5750, S: 0.08673},
				{AgeMonths: 32, L: -0.1067, M: 15.5500, S: 0.08687},
				{AgeMonths: 33, L: -0.1100, M: 15.5250, S: 0.08700},
				{AgeMonths: 34, L: -0.1133, M: 15.5000, S: 0.08713},
				{AgeMonths: 35, L: -0.1167, M: 15.4750, S: 0.08727},
				{AgeMonths: 36, L: -0.1200, M: 15.4500, S: 0.08740},
			},
		},
	}
}
