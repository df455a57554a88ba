// Package dynamic provides the registry of dynamic variables, referenced in
// templates with a $ prefix, e.g. {{$guid}} or {{$randomEmail}}.
//
// Generators are grouped by category:
//   - identifiers: guid, randomUUID, randomObjectId
//   - time: timestamp, isoTimestamp, randomDatePast, ...
//   - numeric: randomInt, randomDigit, randomBoolean
//   - text: randomAlphaNumeric, randomPassword, randomWord, ...
//   - person: randomFullName, randomEmail, randomPhoneNumber, ...
//   - address: randomCity, randomCountry, randomLatitude, ...
//   - network: randomIP, randomMACAddress, randomUrl, ...
//   - commerce: randomPrice, randomProduct, randomCurrencyCode, ...
//
// Every generator is a no-argument function returning a freshly computed
// string. Nothing is memoized: two {{$guid}} references in one request body
// each produce an independent value. Time-derived generators may collide
// within the same clock tick; that is accepted behavior.
package dynamic
