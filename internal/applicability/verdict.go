// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package applicability

import "fillmore-labs.com/sumfold/internal/plan"

// Verdict is the applicability decision for a loop: either eligible with a
// [plan.Plan], or ineligible with a [Reason]. Verdicts are values.
type Verdict struct {
	reason Reason
	plan   plan.Plan
}

// Eligible returns an eligible [Verdict] carrying p.
func Eligible(p plan.Plan) Verdict { return Verdict{reason: None, plan: p} }

// Ineligible returns an ineligible [Verdict] with reason r.
func Ineligible(r Reason) Verdict { return Verdict{reason: r} }

// IsEligible reports whether the loop can be rewritten.
func (v Verdict) IsEligible() bool { return v.reason == None }

// Reason returns the reason of an ineligible verdict, [None] otherwise.
func (v Verdict) Reason() Reason { return v.reason }

// Plan returns the rewrite plan of an eligible verdict.
func (v Verdict) Plan() (plan.Plan, bool) {
	if !v.IsEligible() {
		return plan.Plan{}, false
	}

	return v.plan, true
}

// String implements [fmt.Stringer].
func (v Verdict) String() string {
	if !v.IsEligible() {
		return "Ineligible(" + v.reason.String() + ")"
	}

	return "Eligible(" + v.plan.String() + ")"
}
