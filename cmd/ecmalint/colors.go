/*
 * ecmalint - A linter for ECMAScript and TypeScript sources
 *
 * Copyright ecmalint authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"github.com/logrusorgru/aurora/v4"
)

type colorizer struct {
	enabled bool
}

func (c colorizer) colorize(str string, color aurora.Color) string {
	if !c.enabled {
		return str
	}
	return aurora.Colorize(str, color).String()
}

func (c colorizer) code(str string) string {
	return c.colorize(str, aurora.YellowFg|aurora.BrightFg)
}

func (c colorizer) heading(str string) string {
	return c.colorize(str, aurora.BoldFm)
}

func (c colorizer) failure(str string) string {
	return c.colorize(str, aurora.RedFg|aurora.BrightFg|aurora.BoldFm)
}

func (c colorizer) success(str string) string {
	return c.colorize(str, aurora.GreenFg|aurora.BrightFg)
}
