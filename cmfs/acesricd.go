// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmfs

// Spectral sensitivities of the ACES Reference Input Capture Device,
// from the Academy Color Encoding Specification (ACES): 360-830 nm at
// 1 nm steps, each channel normalized to unit area.

var acesRICDR = []float64{
	1.2e-06, 1.4e-06, 1.5e-06, 1.7e-06, 1.9e-06, 2.2e-06, 2.4e-06, 2.7e-06,
	3.1e-06, 3.5e-06, 3.9e-06, 4.3e-06, 4.9e-06, 5.4e-06, 6.1e-06, 6.9e-06,
	7.9e-06, 9e-06, 1.02e-05, 1.15e-05, 1.28e-05, 1.41e-05, 1.54e-05, 1.69e-05,
	1.87e-05, 2.09e-05, 2.37e-05, 2.71e-05, 3.09e-05, 3.51e-05, 3.97e-05, 4.45e-05,
	4.99e-05, 5.59e-05, 6.31e-05, 7.16e-05, 8.19e-05, 9.38e-05, 0.0001068, 0.0001204,
	0.0001339, 0.0001469, 0.0001604, 0.0001757, 0.0001941, 0.0002169, 0.0002452, 0.0002786,
	0.0003169, 0.0003598, 0.000407, 0.0004583, 0.0005147, 0.0005773, 0.0006474, 0.0007262,
	0.0008134, 0.000909, 0.0010141, 0.0011297, 0.001257, 0.0013971, 0.0015472, 0.0017023,
	0.0018579, 0.002009, 0.0021532, 0.0022907, 0.0024207, 0.0025425, 0.0026557, 0.002759,
	0.0028521, 0.0029352, 0.0030087, 0.0030728, 0.0031276, 0.003173, 0.0032096, 0.0032377,
	0.0032578, 0.0032702, 0.0032753, 0.003274, 0.0032672, 0.0032557, 0.00324, 0.0032202,
	0.0031972, 0.0031718, 0.0031448, 0.0031167, 0.0030871, 0.0030553, 0.0030202, 0.002981,
	0.0029373, 0.0028892, 0.0028368, 0.0027804, 0.00272, 0.0026561, 0.0025883, 0.0025153,
	0.0024358, 0.0023486, 0.0022527, 0.0021498, 0.0020427, 0.0019343, 0.0018271, 0.0017229,
	0.001621, 0.0015215, 0.0014242, 0.0013289, 0.0012361, 0.0011462, 0.0010593, 0.0009753,
	0.0008943, 0.0008163, 0.0007416, 0.0006706, 0.0006038, 0.0005418, 0.0004848, 0.0004326,
	0.0003847, 0.0003403, 0.0002992, 0.0002609, 0.0002256, 0.0001933, 0.0001638, 0.0001373,
	0.0001135, 9.26e-05, 7.43e-05, 5.87e-05, 4.56e-05, 3.51e-05, 2.73e-05, 2.25e-05,
	2.07e-05, 2.23e-05, 2.72e-05, 3.57e-05, 4.83e-05, 6.52e-05, 8.69e-05, 0.0001136,
	0.0001453, 0.0001822, 0.0002244, 0.0002722, 0.0003257, 0.0003847, 0.000449, 0.0005182,
	0.000592, 0.0006703, 0.0007529, 0.0008398, 0.0009307, 0.0010256, 0.0011245, 0.001227,
	0.0013323, 0.0014398, 0.0015488, 0.0016588, 0.00177, 0.0018826, 0.0019967, 0.0021126,
	0.0022303, 0.0023496, 0.0024705, 0.0025932, 0.0027177, 0.0028439, 0.002972, 0.0031017,
	0.0032332, 0.0033662, 0.0035008, 0.003637, 0.003775, 0.0039147, 0.0040564, 0.0042,
	0.0043454, 0.0044926, 0.0046415, 0.004792, 0.004944, 0.0050975, 0.005252, 0.0054075,
	0.0055636, 0.0057201, 0.0058769, 0.0060339, 0.0061913, 0.0063488, 0.0065063, 0.0066637,
	0.0068207, 0.0069769, 0.0071321, 0.0072859, 0.0074383, 0.007589, 0.0077378, 0.0078845,
	0.0080289, 0.0081707, 0.0083093, 0.0084443, 0.0085751, 0.0087015, 0.0088231, 0.0089399,
	0.0090516, 0.0091582, 0.0092591, 0.0093542, 0.0094435, 0.0095269, 0.0096046, 0.0096765,
	0.009742, 0.0098, 0.0098494, 0.0098891, 0.009918, 0.0099368, 0.0099462, 0.0099472,
	0.0099405, 0.0099268, 0.0099054, 0.0098752, 0.0098355, 0.0097852, 0.0097238, 0.0096519,
	0.0095705, 0.0094805, 0.0093828, 0.0092776, 0.009165, 0.0090448, 0.0089172, 0.0087819,
	0.0086396, 0.0084904, 0.0083337, 0.0081692, 0.0079963, 0.0078151, 0.0076266, 0.0074323,
	0.0072336, 0.0070319, 0.0068278, 0.0066219, 0.0064162, 0.0062122, 0.0060119, 0.0058164,
	0.0056255, 0.0054382, 0.0052538, 0.0050713, 0.0048907, 0.0047124, 0.0045364, 0.0043628,
	0.0041916, 0.0040228, 0.0038566, 0.0036932, 0.0035331, 0.0033765, 0.0032236, 0.0030744,
	0.0029294, 0.0027888, 0.0026531, 0.0025225, 0.0023969, 0.0022759, 0.0021592, 0.0020467,
	0.0019381, 0.0018335, 0.0017329, 0.0016362, 0.0015432, 0.001454, 0.0013685, 0.0012867,
	0.0012086, 0.0011342, 0.0010635, 0.0009963, 0.0009329, 0.0008734, 0.0008179, 0.0007665,
	0.0007188, 0.0006745, 0.0006334, 0.0005952, 0.0005597, 0.0005267, 0.0004957, 0.0004662,
	0.0004377, 0.0004097, 0.0003825, 0.0003563, 0.0003313, 0.0003079, 0.000286, 0.0002656,
	0.0002465, 0.0002288, 0.0002124, 0.0001973, 0.0001834, 0.0001707, 0.000159, 0.0001482,
	0.0001384, 0.0001294, 0.0001212, 0.0001135, 0.0001063, 9.95e-05, 9.3e-05, 8.69e-05,
	8.12e-05, 7.59e-05, 7.1e-05, 6.63e-05, 6.2e-05, 5.8e-05, 5.42e-05, 5.06e-05,
	4.73e-05, 4.41e-05, 4.12e-05, 3.85e-05, 3.59e-05, 3.35e-05, 3.12e-05, 2.91e-05,
	2.71e-05, 2.53e-05, 2.36e-05, 2.2e-05, 2.06e-05, 1.92e-05, 1.79e-05, 1.67e-05,
	1.55e-05, 1.45e-05, 1.35e-05, 1.25e-05, 1.17e-05, 1.08e-05, 1.01e-05, 9.4e-06,
	8.7e-06, 8.1e-06, 7.5e-06, 7e-06, 6.5e-06, 6e-06, 5.6e-06, 5.2e-06,
	4.8e-06, 4.5e-06, 4.1e-06, 3.9e-06, 3.6e-06, 3.3e-06, 3.1e-06, 2.9e-06,
	2.7e-06, 2.5e-06, 2.4e-06, 2.2e-06, 2.1e-06, 1.9e-06, 1.8e-06, 1.7e-06,
	1.6e-06, 1.5e-06, 1.4e-06, 1.3e-06, 1.2e-06, 1.1e-06, 1e-06, 1e-06,
	9e-07, 8e-07, 8e-07, 7e-07, 7e-07, 6e-07, 6e-07, 5e-07,
	5e-07, 5e-07, 4e-07, 4e-07, 4e-07, 4e-07, 3e-07, 3e-07,
	3e-07, 3e-07, 3e-07, 2e-07, 2e-07, 2e-07, 2e-07, 2e-07,
	2e-07, 2e-07, 1e-07, 1e-07, 1e-07, 1e-07, 1e-07, 1e-07,
	1e-07, 1e-07, 1e-07, 1e-07, 1e-07, 1e-07, 1e-07, 1e-07,
	1e-07, 1e-07, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
}

var acesRICDG = []float64{
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	1e-07, 1e-07, 1e-07, 1e-07, 1e-07, 1e-07, 1e-07, 1e-07,
	1e-07, 1e-07, 2e-07, 2e-07, 2e-07, 3e-07, 3e-07, 3e-07,
	4e-07, 5e-07, 5e-07, 6e-07, 7e-07, 8e-07, 9e-07, 1e-06,
	1.1e-06, 1.2e-06, 1.3e-06, 1.5e-06, 1.7e-06, 2e-06, 2.3e-06, 2.7e-06,
	3.2e-06, 3.8e-06, 4.4e-06, 5.1e-06, 5.9e-06, 6.9e-06, 8e-06, 9.3e-06,
	1.09e-05, 1.28e-05, 1.51e-05, 1.81e-05, 2.18e-05, 2.65e-05, 3.2e-05, 3.84e-05,
	4.56e-05, 5.37e-05, 6.26e-05, 7.25e-05, 8.33e-05, 9.51e-05, 0.0001081, 0.0001221,
	0.0001372, 0.0001534, 0.0001705, 0.0001886, 0.0002077, 0.0002277, 0.0002486, 0.0002702,
	0.0002926, 0.0003156, 0.0003394, 0.000364, 0.0003897, 0.0004167, 0.000445, 0.0004745,
	0.0005054, 0.0005377, 0.0005713, 0.0006062, 0.0006426, 0.0006803, 0.0007194, 0.0007598,
	0.0008017, 0.0008449, 0.0008891, 0.0009342, 0.00098, 0.0010264, 0.0010734, 0.0011211,
	0.0011696, 0.001219, 0.0012693, 0.0013205, 0.0013729, 0.0014269, 0.0014826, 0.0015401,
	0.0015995, 0.0016608, 0.001724, 0.0017891, 0.0018563, 0.0019256, 0.0019967, 0.002069,
	0.0021424, 0.0022166, 0.0022922, 0.00237, 0.0024507, 0.0025351, 0.0026236, 0.0027165,
	0.0028142, 0.0029173, 0.0030263, 0.0031418, 0.003264, 0.0033928, 0.003528, 0.0036695,
	0.0038168, 0.0039706, 0.0041327, 0.0043045, 0.0044878, 0.0046836, 0.0048904, 0.005106,
	0.0053279, 0.0055539, 0.0057824, 0.0060137, 0.0062484, 0.0064873, 0.0067307, 0.0069786,
	0.0072292, 0.0074806, 0.007731, 0.0079785, 0.0082225, 0.0084618, 0.0086938, 0.0089159,
	0.0091254, 0.0093204, 0.0095018, 0.0096712, 0.0098304, 0.0099812, 0.0101242, 0.0102587,
	0.0103843, 0.0105006, 0.0106074, 0.0107046, 0.0107925, 0.0108717, 0.0109425, 0.0110054,
	0.0110606, 0.0111082, 0.011148, 0.0111802, 0.0112046, 0.0112213, 0.0112306, 0.0112326,
	0.0112273, 0.0112149, 0.0111954, 0.011169, 0.0111362, 0.0110973, 0.0110527, 0.0110022,
	0.0109459, 0.0108839, 0.0108161, 0.0107425, 0.0106629, 0.0105773, 0.0104855, 0.0103873,
	0.0102827, 0.0101713, 0.0100537, 0.0099302, 0.0098011, 0.0096665, 0.0095268, 0.0093819,
	0.009232, 0.0090771, 0.0089174, 0.0087528, 0.0085837, 0.0084104, 0.0082333, 0.0080525,
	0.0078685, 0.0076814, 0.0074915, 0.0072987, 0.0071033, 0.0069055, 0.0067057, 0.0065044,
	0.0063021, 0.0060993, 0.0058964, 0.0056937, 0.0054917, 0.0052906, 0.005091, 0.0048931,
	0.0046974, 0.0045043, 0.0043144, 0.0041283, 0.0039465, 0.003769, 0.0035956, 0.0034261,
	0.0032602, 0.0030979, 0.0029397, 0.0027858, 0.0026369, 0.0024933, 0.0023553, 0.0022229,
	0.0020958, 0.0019739, 0.0018572, 0.0017455, 0.0016389, 0.0015372, 0.0014404, 0.0013484,
	0.001261, 0.0011783, 0.0010998, 0.0010253, 0.0009547, 0.0008876, 0.0008241, 0.0007641,
	0.0007075, 0.0006544, 0.0006045, 0.0005578, 0.0005141, 0.0004733, 0.0004351, 0.0003996,
	0.0003666, 0.0003359, 0.0003074, 0.0002809, 0.0002562, 0.0002334, 0.0002123, 0.0001928,
	0.0001747, 0.0001581, 0.0001428, 0.0001287, 0.0001159, 0.0001043, 9.38e-05, 8.43e-05,
	7.57e-05, 6.8e-05, 6.1e-05, 5.46e-05, 4.88e-05, 4.36e-05, 3.89e-05, 3.46e-05,
	3.08e-05, 2.74e-05, 2.43e-05, 2.16e-05, 1.92e-05, 1.7e-05, 1.52e-05, 1.35e-05,
	1.21e-05, 1.07e-05, 9.5e-06, 8.4e-06, 7.5e-06, 6.6e-06, 5.8e-06, 5.1e-06,
	4.5e-06, 4e-06, 3.5e-06, 3.1e-06, 2.7e-06, 2.3e-06, 2e-06, 1.7e-06,
	1.5e-06, 1.2e-06, 1e-06, 8e-07, 7e-07, 5e-07, 4e-07, 3e-07,
	3e-07, 2e-07, 2e-07, 1e-07, 1e-07, 1e-07, 1e-07, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
}

var acesRICDB = []float64{
	5.7e-06, 6.4e-06, 7.2e-06, 8e-06, 9e-06, 1.02e-05, 1.14e-05, 1.28e-05,
	1.44e-05, 1.62e-05, 1.82e-05, 2.04e-05, 2.28e-05, 2.56e-05, 2.88e-05, 3.26e-05,
	3.72e-05, 4.25e-05, 4.83e-05, 5.43e-05, 6.03e-05, 6.63e-05, 7.25e-05, 7.95e-05,
	8.81e-05, 9.87e-05, 0.0001119, 0.0001278, 0.0001458, 0.0001659, 0.0001876, 0.0002106,
	0.0002358, 0.0002646, 0.0002984, 0.0003388, 0.0003877, 0.0004444, 0.0005063, 0.0005706,
	0.0006348, 0.0006968, 0.0007612, 0.0008341, 0.0009219, 0.0010309, 0.0011658, 0.0013256,
	0.001509, 0.0017144, 0.0019403, 0.0021862, 0.0024568, 0.0027577, 0.0030947, 0.0034736,
	0.0038937, 0.0043545, 0.0048619, 0.0054216, 0.0060397, 0.0067216, 0.0074534, 0.0082124,
	0.0089758, 0.0097205, 0.0104345, 0.0111186, 0.01177, 0.0123856, 0.0129626, 0.0134962,
	0.0139842, 0.0144275, 0.0148269, 0.0151831, 0.015496, 0.0157663, 0.0159962, 0.0161881,
	0.0163441, 0.0164656, 0.0165552, 0.0166173, 0.0166563, 0.0166766, 0.0166801, 0.0166682,
	0.0166448, 0.0166136, 0.0165785, 0.0165424, 0.016503, 0.0164553, 0.0163947, 0.0163164,
	0.0162178, 0.016099, 0.0159594, 0.0157985, 0.0156157, 0.015413, 0.0151874, 0.0149311,
	0.0146365, 0.0142957, 0.0139029, 0.013467, 0.0130026, 0.0125242, 0.0120461, 0.0115764,
	0.0111124, 0.0106534, 0.0101986, 0.0097472, 0.0093009, 0.0088626, 0.0084333, 0.0080139,
	0.0076053, 0.0072084, 0.0068241, 0.0064543, 0.0061006, 0.0057647, 0.0054478, 0.0051493,
	0.0048679, 0.0046025, 0.0043519, 0.0041156, 0.0038935, 0.0036849, 0.003489, 0.0033052,
	0.0031327, 0.0029708, 0.0028191, 0.0026772, 0.0025446, 0.0024213, 0.0023059, 0.0021963,
	0.0020905, 0.0019861, 0.001882, 0.0017786, 0.0016767, 0.0015769, 0.00148, 0.0013859,
	0.0012945, 0.0012068, 0.0011233, 0.001045, 0.0009721, 0.0009043, 0.0008418, 0.0007844,
	0.000732, 0.0006849, 0.0006425, 0.000604, 0.0005687, 0.0005356, 0.0005043, 0.0004747,
	0.0004467, 0.00042, 0.0003944, 0.0003696, 0.0003455, 0.0003224, 0.0003002, 0.0002792,
	0.0002592, 0.0002404, 0.0002225, 0.0002057, 0.0001899, 0.0001751, 0.0001613, 0.0001484,
	0.0001364, 0.0001254, 0.0001151, 0.0001057, 9.71e-05, 8.91e-05, 8.19e-05, 7.52e-05,
	6.91e-05, 6.35e-05, 5.84e-05, 5.38e-05, 4.96e-05, 4.58e-05, 4.24e-05, 3.93e-05,
	3.65e-05, 3.39e-05, 3.15e-05, 2.94e-05, 2.75e-05, 2.57e-05, 2.42e-05, 2.28e-05,
	2.16e-05, 2.06e-05, 1.96e-05, 1.89e-05, 1.82e-05, 1.77e-05, 1.72e-05, 1.68e-05,
	1.65e-05, 1.63e-05, 1.6e-05, 1.57e-05, 1.54e-05, 1.51e-05, 1.46e-05, 1.42e-05,
	1.36e-05, 1.31e-05, 1.25e-05, 1.19e-05, 1.13e-05, 1.07e-05, 1.03e-05, 1e-05,
	9.8e-06, 9.7e-06, 9.6e-06, 9.4e-06, 9.1e-06, 8.7e-06, 8.3e-06, 7.9e-06,
	7.5e-06, 7.1e-06, 6.8e-06, 6.4e-06, 6e-06, 5.6e-06, 5.1e-06, 4.6e-06,
	4.1e-06, 3.6e-06, 3.2e-06, 2.9e-06, 2.6e-06, 2.5e-06, 2.4e-06, 2.2e-06,
	2.1e-06, 2.1e-06, 2e-06, 1.9e-06, 1.8e-06, 1.6e-06, 1.5e-06, 1.3e-06,
	1.1e-06, 9e-07, 8e-07, 7e-07, 6e-07, 5e-07, 5e-07, 4e-07,
	4e-07, 3e-07, 3e-07, 3e-07, 3e-07, 2e-07, 2e-07, 2e-07,
	2e-07, 2e-07, 2e-07, 1e-07, 1e-07, 1e-07, 1e-07, 1e-07,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
}
