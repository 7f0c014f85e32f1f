// Package migrate rewrites a fixed list of source files from the useAuth hook
// to useRobustAuth.
//
// Each existing file is read as UTF-8, passed through an ordered list of
// substitutions (the AuthContext import path, then every literal useAuth()
// call), and written back in place. Files are processed one at a time and a
// failure on one file never stops the run.
//
// The substitutions are textual. The import rule only matches the exact
// single-line form `import { ... } from '@/context/AuthContext';`, so a
// multi-line or double-quoted import is left alone while its call sites are
// still renamed. The call rule also rewrites useAuth() inside comments and
// string literals.
//
// Content is rewritten byte for byte apart from the substitutions, so CRLF
// line endings stay CRLF. The one-off script this replaces normalized them to
// LF when run on such files.
package migrate
