// Copyright 2025 go-wide Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package math

import stdmath "math"

// Polynomial tables list coefficients from the constant term up. They are
// float64 so one table can be shared where both lane types use it; float32
// kernels convert each coefficient once when splatting it.

// =============================================================================
// Sin, Cos, Tan
// =============================================================================

// π/2 split into three parts. The leading parts have few significant bits,
// so each fused subtraction of q·part leaves a residual that fits the lane.
const (
	piO2A_f32 = 0.78515625 * 2
	piO2B_f32 = 2.4187564849853515625e-4 * 2
	piO2C_f32 = 3.77489497744594108e-8 * 2

	piO2A_f64 = 7.853981554508209228515625e-1 * 2
	piO2B_f64 = 7.94662735614792836714e-9 * 2
	piO2C_f64 = 3.06161699786838294307e-17 * 2

	// Quadrant counts above these give no usable reduced argument.
	trigLimit_f32 = 1 << 25
	trigLimit_f64 = 1 << 55
)

var (
	sinP_f32 = []float64{-1.6666654611e-1, 8.3321608736e-3, -1.9515295891e-4}
	cosP_f32 = []float64{4.166664568298827e-2, -1.388731625493765e-3, 2.443315711809948e-5}

	sinP_f64 = []float64{
		-1.66666666666666307295e-1,
		8.33333333332211858878e-3,
		-1.98412698295895385996e-4,
		2.75573136213857245213e-6,
		-2.50507477628578072866e-8,
		1.58962301576546568060e-10,
	}
	cosP_f64 = []float64{
		4.16666666666665929218e-2,
		-1.38888888888730564116e-3,
		2.48015872888517045348e-5,
		-2.75573141792967388112e-7,
		2.08757008419747316778e-9,
		-1.13585365213876817300e-11,
	}

	tanP_f32 = []float64{
		3.33333253e-1, 1.33387994e-1, 5.34112807e-2,
		2.44301354e-2, 3.11992232e-3, 9.38540185e-3,
	}

	// tan(r) = r + r³·P(r²)/Q(r²), Q monic.
	tanP_f64 = []float64{
		-1.79565251976484877988e7,
		1.15351664838587416140e6,
		-1.30936939181383777646e4,
	}
	tanQ_f64 = []float64{
		-5.38695755929454629881e7,
		2.50083801823357915839e7,
		-1.32089234440210967447e6,
		1.36812963470692954678e4,
	}
)

// =============================================================================
// Asin, Acos, Atan
// =============================================================================

const (
	// float32 asin switches to the half-angle form above this.
	asinBig_f32 = 0.5
	// float64 asin switches to the rational form for 1-|x| at this.
	asinBig_f64 = 0.625

	// atan switches to (t-1)/(t+1) at these ratios.
	atanSplit_f32 = stdmath.Sqrt2 - 1
	atanSplit_f64 = 0.66
)

var (
	asinP_f32 = []float64{
		1.6666752422e-1, 7.4953002686e-2, 4.5470025998e-2,
		2.4181311049e-2, 4.2163199048e-2,
	}

	// 1-|x| branch: asin = π/2 - sqrt(2z)·(1 + z·R(z)/S(z)).
	asinR_f64 = []float64{
		2.853665548261061424989e1,
		-2.556901049652824852289e1,
		6.968710824104713396794e0,
		-5.634242780008963776856e-1,
		2.967721961301243206100e-3,
	}
	asinS_f64 = []float64{
		3.424398657913078477438e2,
		-3.838770957603691357202e2,
		1.470656354026814941758e2,
		-2.194779531642920639778e1,
	}
	// |x|² branch: asin = x + x·z·P(z)/Q(z).
	asinP_f64 = []float64{
		-8.198089802484824371615e0,
		1.956261983317594739197e1,
		-1.626247967210700244449e1,
		5.444622390564711410273e0,
		-6.019598008014123785661e-1,
		4.253011369004428248960e-3,
	}
	asinQ_f64 = []float64{
		-4.918853881490881290097e1,
		1.395105614657485689735e2,
		-1.471791292232726029859e2,
		7.049610280856842141659e1,
		-1.474091372988853791896e1,
	}

	atanP_f32 = []float64{-3.33329491539e-1, 1.99777106478e-1, -1.38776856032e-1, 8.05374449538e-2}

	atanP_f64 = []float64{
		-6.485021904942025371773e1,
		-1.228866684490136173410e2,
		-7.500855792314704667340e1,
		-1.615753718733365076637e1,
		-8.750608600031904122785e-1,
	}
	atanQ_f64 = []float64{
		1.945506571482613964425e2,
		4.853903996359136964868e2,
		4.328810604912902668951e2,
		1.650270098316988542046e2,
		2.485846490142306297962e1,
	}
)

// =============================================================================
// Log
// =============================================================================

// ln 2 split so that e·ln2Hi is exact for every exponent e.
const (
	logLn2Hi_f32 = 0.693359375
	logLn2Lo_f32 = -2.12194440e-4

	logLn2Hi_f64 = 0.693359375
	logLn2Lo_f64 = -2.121944400546905827679e-4
)

var (
	// ln(1+f) = f - f²/2 + f³·P(f).
	logP_f32 = []float64{
		3.3333331174e-1, -2.4999993993e-1, 2.0000714765e-1,
		-1.6668057665e-1, 1.4249322787e-1, -1.2420140846e-1,
		1.1676998740e-1, -1.1514610310e-1, 7.0376836292e-2,
	}

	// ln(1+f) = f - f²/2 + f³·P(f)/Q(f), Q monic.
	logP_f64 = []float64{
		7.70838733755885391666e0,
		1.79368678507819816313e1,
		1.44989225341610930846e1,
		4.70579119878881725854e0,
		4.97494994976747001425e-1,
		1.01875663804580931796e-4,
	}
	logQ_f64 = []float64{
		2.31251620126765340583e1,
		7.11544750618563894466e1,
		8.29875266912776603211e1,
		4.52279145837532221105e1,
		1.12873587189167450590e1,
	}
)

// =============================================================================
// Exp
// =============================================================================

const (
	expLn2Hi_f32 = 0.693359375
	expLn2Lo_f32 = -2.12194440e-4
	expLn2Hi_f64 = 0.693145751953125
	expLn2Lo_f64 = 1.42860682030941723212e-6

	// log10(2) split the same way for Exp10.
	expLog10_2Hi_f32 = 0.301025391
	expLog10_2Lo_f32 = 4.60503907e-6
	expLog10_2Hi_f64 = 0.30102999554947019
	expLog10_2Lo_f64 = 1.1451100899212592e-10

	// |x| at or above these is out of range for the polynomial path.
	expMax_f32   = 87.3
	expMax_f64   = 708.39
	exp2Max_f32  = 126
	exp2Max_f64  = 1022
	exp10Max_f32 = 37.9
	exp10Max_f64 = 307.65
)

var (
	// e^r = 1 + r + r²·P(r): Taylor terms 1/2! up to 1/7! and 1/13!.
	expP_f32 = taylor(2, 7)
	expP_f64 = taylor(2, 13)
)

// taylor returns 1/k! for k = from..to.
func taylor(from, to int) []float64 {
	out := make([]float64, 0, to-from+1)
	f := 1.0
	for k := 1; k <= to; k++ {
		f *= float64(k)
		if k >= from {
			out = append(out, 1/f)
		}
	}
	return out
}
