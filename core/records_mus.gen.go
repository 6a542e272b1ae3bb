// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	slicehPa6ZAQd9hWdnni4PhxelAΞΞ = ord.NewSliceSer[float32](varint.Float32)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return ord.String.Marshal(string(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return ord.String.Size(string(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

var RoleMUS = roleMUS{}

type roleMUS struct{}

func (s roleMUS) Marshal(v Role, bs []byte) (n int) {
	return ord.String.Marshal(string(v), bs)
}

func (s roleMUS) Unmarshal(bs []byte) (v Role, n int, err error) {
	tmp, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v = Role(tmp)
	return
}

func (s roleMUS) Size(v Role) (size int) {
	return ord.String.Size(string(v))
}

func (s roleMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

var StageMUS = stageMUS{}

type stageMUS struct{}

func (s stageMUS) Marshal(v Stage, bs []byte) (n int) {
	return ord.String.Marshal(string(v), bs)
}

func (s stageMUS) Unmarshal(bs []byte) (v Stage, n int, err error) {
	tmp, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v = Stage(tmp)
	return
}

func (s stageMUS) Size(v Stage) (size int) {
	return ord.String.Size(string(v))
}

func (s stageMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

var ProfileMUS = profileMUS{}

type profileMUS struct{}

func (s profileMUS) Marshal(v Profile, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.FounderName, bs[n:])
	n += ord.String.Marshal(v.Email, bs[n:])
	n += RoleMUS.Marshal(v.Role, bs[n:])
	n += ord.String.Marshal(v.Company, bs[n:])
	n += ord.String.Marshal(v.Location, bs[n:])
	n += ord.String.Marshal(v.Idea, bs[n:])
	n += ord.String.Marshal(v.About, bs[n:])
	n += ord.String.Marshal(v.Keywords, bs[n:])
	n += StageMUS.Marshal(v.Stage, bs[n:])
	n += ord.String.Marshal(v.LinkedIn, bs[n:])
	return n + ord.String.Marshal(v.Notes, bs[n:])
}

func (s profileMUS) Unmarshal(bs []byte) (v Profile, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.FounderName, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Email, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Role, n1, err = RoleMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Company, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Location, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Idea, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.About, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Keywords, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Stage, n1, err = StageMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.LinkedIn, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Notes, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s profileMUS) Size(v Profile) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.FounderName)
	size += ord.String.Size(v.Email)
	size += RoleMUS.Size(v.Role)
	size += ord.String.Size(v.Company)
	size += ord.String.Size(v.Location)
	size += ord.String.Size(v.Idea)
	size += ord.String.Size(v.About)
	size += ord.String.Size(v.Keywords)
	size += StageMUS.Size(v.Stage)
	size += ord.String.Size(v.LinkedIn)
	return size + ord.String.Size(v.Notes)
}

func (s profileMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = RoleMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = StageMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var DocumentMUS = documentMUS{}

type documentMUS struct{}

func (s documentMUS) Marshal(v Document, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Location, bs[n:])
	n += StageMUS.Marshal(v.Stage, bs[n:])
	n += ord.String.Marshal(v.Text, bs[n:])
	n += slicehPa6ZAQd9hWdnni4PhxelAΞΞ.Marshal(v.Vector, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.IndexedAt, bs[n:])
}

func (s documentMUS) Unmarshal(bs []byte) (v Document, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Location, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Stage, n1, err = StageMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Text, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = slicehPa6ZAQd9hWdnni4PhxelAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.IndexedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s documentMUS) Size(v Document) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Location)
	size += StageMUS.Size(v.Stage)
	size += ord.String.Size(v.Text)
	size += slicehPa6ZAQd9hWdnni4PhxelAΞΞ.Size(v.Vector)
	return size + raw.TimeUnixMicro.Size(v.IndexedAt)
}

func (s documentMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = StageMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicehPa6ZAQd9hWdnni4PhxelAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
