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

package fix

import (
	"fmt"
)

type account struct {
	deposits []int64
}

func (a account) print() {
	var balance int64 = 0 // want "Loop summing into 'balance' can be replaced with lo.Sum"

	// running balance
	for _, d := range a.deposits {
		balance = balance + d
	}
	fmt.Println(balance)
}
