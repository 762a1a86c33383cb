package condor2nav

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		path string
		want Classification
	}{
		{
			name: "unc path",
			path: `\\server\share\dir\file`,
			want: Classification{Backend: NetworkShare, RootSkipSegments: 2},
		},
		{
			name: "unc path forward slashes",
			path: `//server/share`,
			want: Classification{Backend: NetworkShare, RootSkipSegments: 2},
		},
		{
			name: "unc root only",
			path: `\\`,
			want: Classification{Backend: NetworkShare, RootSkipSegments: 2},
		},
		{
			name: "device path",
			path: `\MyDevice\dir\file`,
			want: Classification{Backend: RemoteDevice},
		},
		{
			name: "device path forward slashes",
			path: `/Storage/logs`,
			want: Classification{Backend: RemoteDevice},
		},
		{
			name: "device path mixed separators",
			path: `\Storage/logs`,
			want: Classification{Backend: RemoteDevice},
		},
		{
			name: "short leading separator path is local",
			path: `\a`,
			want: Classification{Backend: Local},
		},
		{
			name: "drive path",
			path: `C:\dir\file`,
			want: Classification{Backend: Local},
		},
		{
			name: "relative path",
			path: `dir\file`,
			want: Classification{Backend: Local},
		},
		{
			name: "bare file name",
			path: `file`,
			want: Classification{Backend: Local},
		},
		{
			name: "empty path",
			path: ``,
			want: Classification{Backend: Local},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.path)
			if got != tt.want {
				t.Errorf("Classify(%q) = %+v, want %+v", tt.path, got, tt.want)
			}
		})
	}
}

func TestClassifyIsPure(t *testing.T) {
	// The same path always classifies identically.
	path := `\MyDevice\dir\file`
	first := Classify(path)
	for i := 0; i < 3; i++ {
		if got := Classify(path); got != first {
			t.Fatalf("Classify(%q) changed between calls: %+v then %+v", path, first, got)
		}
	}
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		path     string
		wantDir  string
		wantFile string
	}{
		{`C:\dir\file.txt`, `C:\dir\`, `file.txt`},
		{`\Device\cfg.ini`, `\Device\`, `cfg.ini`},
		{`dir/sub/file`, `dir/sub/`, `file`},
		{`dir/sub\file`, `dir/sub\`, `file`},
		{`file.txt`, ``, `file.txt`},
		{``, ``, ``},
		{`dir\`, `dir\`, ``},
	}

	for _, tt := range tests {
		dir, file := SplitPath(tt.path)
		if dir != tt.wantDir || file != tt.wantFile {
			t.Errorf("SplitPath(%q) = (%q, %q), want (%q, %q)",
				tt.path, dir, file, tt.wantDir, tt.wantFile)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Local, "local"},
		{RemoteDevice, "device"},
		{NetworkShare, "share"},
		{Kind(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}
